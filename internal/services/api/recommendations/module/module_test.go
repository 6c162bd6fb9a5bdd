package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	phttp "panchang/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedAdvisor struct{}

func (cannedAdvisor) CompleteJSON(_ context.Context, _, _ string, out any) error {
	return json.Unmarshal([]byte(`{"favorable":["a"],"avoid":["b"]}`), out)
}

func serve(m modkit.Module, body string) *httptest.ResponseRecorder {
	r := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPIV1(r, nil, m.MountRoutes)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body)))
	return rec
}

func TestRecommendationsEndpoint(t *testing.T) {
	body := `{"panchangam":{"date":"2024-01-01","weekday":"புதன்","nakshatra":"அஸ்வினி"},"category":"student"}`

	rec := serve(New(modkit.Deps{}), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"source":"fallback"`)

	rec = serve(New(modkit.Deps{}, modkit.WithPorts(Ports{Advisor: cannedAdvisor{}})), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"source":"mistral"`)
	assert.Contains(t, rec.Body.String(), `"favorable":["a"]`)
}

func TestRecommendationsEndpoint_Validation(t *testing.T) {
	m := New(modkit.Deps{})
	for name, body := range map[string]string{
		"no category":   `{"panchangam":{"date":"2024-01-01"}}`,
		"no panchangam": `{"category":"student"}`,
		"no date":       `{"panchangam":{"weekday":"புதன்"},"category":"student"}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, serve(m, body).Code)
		})
	}
}
