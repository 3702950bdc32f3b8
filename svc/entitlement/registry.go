package entitlement

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
	"github.com/dmitrymomot/interviewpro/pkg/logger"
	"github.com/dmitrymomot/interviewpro/pkg/session"
)

// Registry owns one entitlement.State per session.
// States are created on first use at TierFree and dropped when the session
// ends; nothing is persisted.
type Registry struct {
	mu     sync.Mutex
	states map[uuid.UUID]*entry
	log    *slog.Logger
}

type entry struct {
	state       *entitlement.State
	unsubscribe func()
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that records tier changes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		states: make(map[uuid.UUID]*entry),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the session's state, creating it at TierFree if needed.
// The same pointer is returned for the lifetime of the session.
func (r *Registry) State(sessionID uuid.UUID) *entitlement.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.states[sessionID]; ok {
		return e.state
	}

	st := entitlement.NewState()
	e := &entry{state: st}
	e.unsubscribe = st.Subscribe(func(c entitlement.Change) {
		r.log.Info("tier selected",
			logger.Component("entitlement"),
			logger.SessionID(sessionID),
			logger.TierChange(c.From.String(), c.To.String()),
			slog.Bool("changed", c.Changed()),
		)
	})
	r.states[sessionID] = e
	return st
}

// Lookup returns the session's state without creating one.
func (r *Registry) Lookup(sessionID uuid.UUID) (*entitlement.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.states[sessionID]
	if !ok {
		return nil, false
	}
	return e.state, true
}

// Forget drops the session's state. Listeners other than the registry's own
// stay attached to the dropped state until their owners unsubscribe.
func (r *Registry) Forget(sessionID uuid.UUID) {
	r.mu.Lock()
	e, ok := r.states[sessionID]
	delete(r.states, sessionID)
	r.mu.Unlock()

	if ok {
		e.unsubscribe()
		r.log.Debug("session state released",
			logger.Component("entitlement"),
			logger.SessionID(sessionID),
		)
	}
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// OnSessionExpire adapts Forget to session.ExpireFunc.
func (r *Registry) OnSessionExpire(s session.Session) {
	r.Forget(s.ID)
}

// FromRequestContext resolves the state of the session carried by ctx.
func (r *Registry) FromRequestContext(ctx context.Context) (*entitlement.State, error) {
	s, ok := session.FromContext(ctx)
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return r.State(s.ID), nil
}
