// Package handler adapts typed handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders, and
// returns a Response. Wrap applies binders, decorators and an ErrorHandler and
// produces an http.HandlerFunc for any router:
//
//	type planRequest struct {
//		Tier entitlement.Tier `path:"tier"`
//	}
//
//	selectPlan := func(ctx handler.Context, req planRequest) handler.Response {
//		if err := state.SetTier(req.Tier); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.RedirectBack("/plans")
//	}
//
//	r.Post("/subscription/plan/{tier}", handler.Wrap(selectPlan,
//		handler.WithBinders[handler.Context, planRequest](binder.ChiPath()),
//	))
//
// Responses are datastar aware. Templ patches the component over SSE when
// the request comes from the datastar client and renders plain HTML
// otherwise; Redirect and RedirectBack emit a datastar redirect event in the
// same situation. SSE keeps a stream open for server-pushed patches.
package handler
