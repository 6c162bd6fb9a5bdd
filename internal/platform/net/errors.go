package net

import (
	"net/http"

	perr "panchang/internal/platform/errors"
)

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// ServerFault reports whether err should be logged as our failure rather than the caller's
func ServerFault(err error) bool {
	return err != nil && HTTPStatus(err) >= http.StatusInternalServerError
}
