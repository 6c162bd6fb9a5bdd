package prokerala

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "panchang/internal/platform/errors"
	pstrings "panchang/internal/platform/strings"
)

// providerError is the error body the API sends with 4xx answers
type providerError struct {
	Status string `json:"status"`
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Code   string `json:"code"`
	} `json:"errors"`
}

// statusError maps a non retryable status to a project error carrying the provider's detail
func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	var pe providerError
	if json.Unmarshal(body, &pe) == nil && len(pe.Errors) > 0 {
		msg = pe.Errors[0].Detail
		if msg == "" {
			msg = pe.Errors[0].Title
		}
	}
	msg = pstrings.Truncate(msg, 200)
	switch status {
	case http.StatusUnauthorized:
		return perr.Unauthorizedf("prokerala unauthorized: %s", msg)
	case http.StatusForbidden:
		return perr.Forbiddenf("prokerala forbidden: %s", msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return perr.InvalidArgf("prokerala rejected request: %s", msg)
	default:
		return perr.Newf(perr.ErrorCodeUpstream, "prokerala unexpected status %d: %s", status, msg)
	}
}

func transient(status int) bool {
	switch status {
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryAfter reads a Retry-After header given in seconds
func retryAfter(v string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func coord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
