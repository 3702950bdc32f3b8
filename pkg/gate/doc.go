// Package gate renders protected content behind an entitlement check.
//
// A Gate is bound to one session's entitlement.State and the plan catalog.
// Render wraps a templ component: when the session tier unlocks the feature the
// content is rendered as is, otherwise it is rendered through an Obscurer (Blur
// by default: blurred, pointer events off, inert) with the upgrade surface laid
// over it. Picking a plan in the surface posts to the plan selection endpoint,
// which only calls State.SetTier.
//
// The component evaluates the policy on every render, so re-rendering after a
// tier change is enough to lock or unlock content; there is nothing to reset.
//
//	g := gate.New(state, catalog)
//	page := g.Render(entitlement.FeatureResumeReport, views.ResumeReport(report))
//	return handler.Templ(page)
//
// Unknown features are programming errors: the rendered component returns
// entitlement.ErrInvalidFeatureKind instead of picking a side.
package gate
