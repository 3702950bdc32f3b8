package httpserver

import (
	"context"
	"log/slog"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnShutdown registers fn to run after the listener has stopped.
// Hooks run in registration order; their errors are joined.
func WithOnShutdown(fn func(context.Context) error) Option {
	if fn == nil {
		panic("httpserver: nil shutdown hook")
	}
	return func(s *Server) {
		s.onShutdown = append(s.onShutdown, fn)
	}
}
