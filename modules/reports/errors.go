package reports

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/interviewpro/handler"
)

var (
	ErrNoSession = errors.Join(
		handler.NewHTTPError(http.StatusInternalServerError, "session_required"),
		errors.New("reports: request has no session"),
	)
	ErrFailedToLoadReport = errors.New("reports: failed to load report")
)
