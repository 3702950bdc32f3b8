package reports

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/interviewpro/handler"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
	"github.com/dmitrymomot/interviewpro/pkg/session"
)

// StateResolver returns the entitlement state of a session.
type StateResolver interface {
	State(sessionID uuid.UUID) *entitlement.State
}

// Context is the request context of report handlers. State is nil when the
// request carries no session; requireState rejects such requests.
type Context struct {
	handler.Context
	Session *session.Session
	State   *entitlement.State
}

func contextFactory(states StateResolver) func(http.ResponseWriter, *http.Request) *Context {
	return func(w http.ResponseWriter, r *http.Request) *Context {
		ctx := &Context{Context: handler.NewContext(w, r)}
		if s, ok := session.FromContext(r.Context()); ok {
			ctx.Session = s
			ctx.State = states.State(s.ID)
		}
		return ctx
	}
}

func requireState[R any](next handler.HandlerFunc[*Context, R]) handler.HandlerFunc[*Context, R] {
	return func(ctx *Context, req R) handler.Response {
		if ctx.State == nil {
			return handler.Error(ErrNoSession)
		}
		return next(ctx, req)
	}
}
