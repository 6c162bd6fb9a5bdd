package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "panchang/internal/platform/errors"
)

// shared payload for many tests
type payload struct {
	Date     string  `json:"date" validate:"required,isodate"`
	Latitude float64 `json:"latitude" validate:"min=-90,max=90"`
	Ayanamsa int     `json:"ayanamsa,omitempty" validate:"omitempty,oneof=1 3 5"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2025-03-14","latitude":13.08,"ayanamsa":3}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2025-03-14" || got.Ayanamsa != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody_Disallow(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_AllowEmptyBody_EOF_OK(t *testing.T) {
	type emptyOK struct {
		Note string `json:"note"`
	}
	req := httptest.NewRequest("POST", "/", http.NoBody)

	got, err := ParseJSON[emptyOK](req, JSONOptions{AllowEmptyBody: true})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (emptyOK{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2025-03-14","boom":1}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for unknown field, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_DisallowUnknownFalse_OK(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2025-03-14","extra":"ok"}`))
	if _, err := ParseJSON[payload](req, JSONOptions{DisallowUnknown: false}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

// Forces trailing-data branch via seam
func TestParseJSON_TrailingData_Seam(t *testing.T) {
	orig := jsonMore
	jsonMore = func(_ *json.Decoder) bool { return true }
	defer func() { jsonMore = orig }()

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2025-03-14"}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for trailing data, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_MaxBytes_Fail(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2025-03-14"}`))
	_, err := ParseJSON[payload](req, JSONOptions{MaxBytes: 5, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error due to size limit, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"bad date", `{"date":"14/03/2025"}`, "date", "date must be a calendar date in YYYY-MM-DD form"},
		{"impossible date", `{"date":"2025-02-30"}`, "date", "date must be a calendar date in YYYY-MM-DD form"},
		{"latitude high", `{"date":"2025-03-14","latitude":91}`, "latitude", "latitude must be at most 90"},
		{"latitude low", `{"date":"2025-03-14","latitude":-91}`, "latitude", "latitude must be at least -90"},
		{"ayanamsa", `{"date":"2025-03-14","ayanamsa":2}`, "ayanamsa", "ayanamsa must be one of [1 3 5]"},
	}
	for _, c := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(c.body))
		_, err := ParseJSON[payload](req)
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: expected validation code, got %v (%v)", c.name, perr.CodeOf(err), err)
		}
		e, _ := perr.As(err)
		if e.Field() != c.field {
			t.Fatalf("%s: field %q want %q", c.name, e.Field(), c.field)
		}
		if err.Error() != c.msg {
			t.Fatalf("%s: message %q want %q", c.name, err.Error(), c.msg)
		}
	}
}

// Triggers InvalidValidationError in validator.Struct
func TestParseJSON_InvalidValidationError_Path(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`5`))
	_, err := ParseJSON[int](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON-coded error, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestValidate_Direct(t *testing.T) {
	if err := Validate(payload{Date: "2024-02-29"}); err != nil {
		t.Fatalf("leap day should validate: %v", err)
	}
	if err := Validate(payload{}); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("missing date should fail, got %v", err)
	}
}

func TestTagNameFunc_DashUsesFieldName(t *testing.T) {
	type s struct {
		Secret int `json:"-" validate:"min=1"`
	}
	err := Get().Validator.Struct(s{Secret: 0})
	field, _ := ValidationFieldAndMessage(err)
	if field != "Secret" {
		t.Fatalf("expected field=Secret, got %s", field)
	}
}

func TestTagNameFunc_NoTagUsesFieldName(t *testing.T) {
	type s struct {
		Plain int `validate:"min=1"`
	}
	err := Get().Validator.Struct(s{Plain: 0})
	field, _ := ValidationFieldAndMessage(err)
	if field != "Plain" {
		t.Fatalf("expected field=Plain, got %s", field)
	}
}

func TestValidationFieldAndMessage_GenericError(t *testing.T) {
	field, msg := ValidationFieldAndMessage(errors.New("boom"))
	if field != "" || msg != "boom" {
		t.Fatalf("expected generic passthrough, got field=%q msg=%q", field, msg)
	}
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should give empty pair")
	}
}
