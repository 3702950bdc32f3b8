package gate

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

// Option configures a Gate.
type Option func(*Gate)

// Obscurer turns content into a non-interactive, visually degraded variant.
type Obscurer func(content templ.Component) templ.Component

// WithPolicy replaces entitlement.DefaultPolicy.
func WithPolicy(p entitlement.Policy) Option {
	return func(g *Gate) {
		if p != nil {
			g.policy = p
		}
	}
}

// WithObscurer replaces the default Blur obscurer.
func WithObscurer(o Obscurer) Option {
	return func(g *Gate) {
		if o != nil {
			g.obscure = o
		}
	}
}

// WithActionURL sets the URL the upgrade surface posts to for a tier.
func WithActionURL(fn func(entitlement.Tier) string) Option {
	return func(g *Gate) {
		if fn != nil {
			g.actionURL = fn
		}
	}
}
