package module

import (
	"testing"

	phttp "panchang/internal/platform/net/http"
	kit "panchang/internal/platform/testkit"
)

type Enricher interface{ Enrich(string) string }

type upper struct{}

func (upper) Enrich(s string) string { return s + "!" }

type portSet struct {
	Enricher Enricher
	hidden   Enricher
}

type stubModule struct {
	name    string
	ports   any
	mounted bool
}

func (s *stubModule) MountRoutes(phttp.Router) { s.mounted = true }
func (s *stubModule) Ports() any               { return s.ports }
func (s *stubModule) Name() string             { return s.name }

var _ Module = (*stubModule)(nil)

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil ports", nil, false},
		{"direct implementation", upper{}, true},
		{"struct field", portSet{Enricher: upper{}}, true},
		{"pointer to struct", &portSet{Enricher: upper{}}, true},
		{"nil pointer", (*portSet)(nil), false},
		{"unexported field only", portSet{hidden: upper{}}, false},
		{"unrelated value", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[Enricher](&stubModule{ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok=%v want %v", ok, c.ok)
			}
			if ok && got.Enrich("x") != "x!" {
				t.Fatalf("wrong port returned")
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	m := &stubModule{name: "chandrashtama", ports: portSet{Enricher: upper{}}}
	if MustPortsOf[Enricher](m).Enrich("a") != "a!" {
		t.Fatalf("MustPortsOf returned wrong port")
	}
	kit.MustPanic(t, func() { MustPortsOf[Enricher](&stubModule{name: "empty"}) })
}

func TestMountRoutesContract(t *testing.T) {
	m := &stubModule{}
	m.MountRoutes(nil)
	if !m.mounted {
		t.Fatalf("expected MountRoutes to be observable")
	}
}
