package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type inDTO struct {
	N int `json:"n" validate:"min=1"`
}

func TestJSONHandler_Success(t *testing.T) {
	h := JSONHandler(func(_ *http.Request, in inDTO) (any, error) {
		return map[string]int{"doubled": in.N * 2}, nil
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"n":7}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"doubled":14`) {
		t.Fatalf("body %q missing doubled result", rr.Body.String())
	}
}

func TestJSONHandler_BindAndValidationErrors(t *testing.T) {
	h := JSONHandler(func(_ *http.Request, _ inDTO) (any, error) {
		t.Fatal("handler should not be called on bind error")
		return nil, nil
	})

	cases := map[string]int{
		`{`:       http.StatusBadRequest,
		`{"n":0}`: http.StatusBadRequest,
	}
	for body, want := range cases {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body)))
		if rr.Code != want {
			t.Fatalf("%s: status %d want %d", body, rr.Code, want)
		}
	}
}

func TestJSONHandler_HandlerError(t *testing.T) {
	h := JSONHandler(func(_ *http.Request, _ inDTO) (any, error) {
		return nil, errors.New("boom")
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"n":1}`)))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on handler error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("expected error message in body, got %q", rr.Body.String())
	}
}
