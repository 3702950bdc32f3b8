package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/pkg/environment"
	"github.com/dmitrymomot/interviewpro/pkg/logger"
	"github.com/dmitrymomot/interviewpro/pkg/requestid"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	// Detail holds the raw error text in development, empty otherwise.
	Detail    string
	RequestID string
	RetryURL  string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "warning" for 4xx, "error" for 5xx
	RequestID string
}

// ErrorHandlerConfig supplies the components used to show errors.
type ErrorHandlerConfig struct {
	ErrorPage   func(ErrorPageParams) templ.Component
	ErrorToast  func(ErrorToastParams) templ.Component
	ToastTarget string // defaults to "#toast-container"
}

type errorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
		Type:       "error",
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}
	if info.StatusCode >= 400 && info.StatusCode < 500 {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs err at a level derived from its status and renders an
// error page, or a toast patched into ToastTarget for datastar requests.
// Without components it falls back to plain text.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		info := classifyError(err)
		reqID := requestid.FromContext(r.Context())

		log.LogAttrs(r.Context(), info.LogLevel, "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: reqID,
			})
			if rerr := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend)).Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		params := ErrorPageParams{
			StatusCode: info.StatusCode,
			Message:    info.Message,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		}
		if environment.IsDevelopment(r.Context()) {
			params.Detail = err.Error()
		}
		if rerr := TemplWithStatus(cfg.ErrorPage(params), info.StatusCode).Render(w, r); rerr != nil {
			log.ErrorContext(r.Context(), "render error page", logger.Error(rerr))
		}
	}
}
