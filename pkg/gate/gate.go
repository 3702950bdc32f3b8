package gate

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

// Gate is the enforcement point for protected content.
// It holds no state of its own: every Status and Render call asks the policy
// about the tier currently held by the injected entitlement.State.
type Gate struct {
	state     *entitlement.State
	catalog   *entitlement.Catalog
	policy    entitlement.Policy
	obscure   Obscurer
	actionURL func(entitlement.Tier) string
}

// New creates a Gate bound to a session's state and the plan catalog.
// Panics if state or catalog is nil.
func New(state *entitlement.State, catalog *entitlement.Catalog, opts ...Option) *Gate {
	if state == nil {
		panic("gate: entitlement state is required")
	}
	if catalog == nil {
		panic("gate: plan catalog is required")
	}

	g := &Gate{
		state:     state,
		catalog:   catalog,
		policy:    entitlement.DefaultPolicy,
		obscure:   Blur,
		actionURL: DefaultActionURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DefaultActionURL is the plan selection endpoint for a tier.
func DefaultActionURL(t entitlement.Tier) string {
	return "/subscription/plan/" + string(t)
}

// ElementID is the DOM id of the gate wrapper for feature.
func ElementID(feature entitlement.Feature) string {
	return "gate-" + string(feature)
}

// Status evaluates the gate for feature against the current tier.
func (g *Gate) Status(feature entitlement.Feature) (Status, error) {
	ok, err := g.policy.HasAccess(g.state.Tier(), feature)
	if err != nil {
		return Locked, err
	}
	if ok {
		return Unlocked, nil
	}
	return Locked, nil
}

// Select applies a plan chosen in the upgrade surface. It only changes the
// session tier; no billing happens here.
func (g *Gate) Select(t entitlement.Tier) error {
	return g.state.SetTier(t)
}

// Render returns a component that, each time it is rendered, shows content as is
// when the feature is unlocked, or obscured under the upgrade surface when it is
// locked. An unknown feature makes Render fail with entitlement.ErrInvalidFeatureKind
// before anything is written.
func (g *Gate) Render(feature entitlement.Feature, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if content == nil {
			return ErrNilContent
		}

		status, err := g.Status(feature)
		if err != nil {
			return err
		}

		hw := &htmlWriter{w: w}
		hw.raw(`<div id="`)
		hw.text(ElementID(feature))
		hw.raw(`" data-gate="`)
		hw.text(string(feature))
		hw.raw(`" data-gate-state="`)
		hw.text(status.String())
		hw.raw(`"`)
		if status == Locked {
			hw.raw(` class="relative"`)
		}
		hw.raw(`>`)
		if hw.err != nil {
			return hw.err
		}

		if status == Unlocked {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		} else {
			if err := g.obscure(content).Render(ctx, w); err != nil {
				return err
			}
			overlay := UpgradeSurface(g.catalog.ListPlans(), g.state.Tier(), g.actionURL)
			if err := overlay.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

// Blur renders content blurred with pointer events and selection disabled.
// The content stays in the markup but is hidden from assistive technology
// and made inert.
func Blur(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="blur-lg pointer-events-none select-none" aria-hidden="true" inert>`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
