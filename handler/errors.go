package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse        = errors.New("handler: nil response")
	ErrDataStarRequired   = errors.New("handler: endpoint requires a datastar request")
	ErrStreamNotSupported = errors.New("handler: response writer does not support streaming")
)

// HTTPError carries a status code and a stable, client-facing key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrForbidden  = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound   = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrInternal   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that hands err to the configured ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
