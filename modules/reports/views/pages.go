package views

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/handler"
	"github.com/dmitrymomot/interviewpro/modules/reports"
	"github.com/dmitrymomot/interviewpro/pkg/gate"
)

// PlansPage shows the plan picker outside of any gate.
func PlansPage(p reports.PlansPageParams) templ.Component {
	return component(func(w *writer) {
		w.raw(`<section class="relative min-h-full" data-page="plans">`)
		w.component(gate.UpgradeSurface(p.Plans, p.Current, p.ActionURL))
		w.raw(`</section>`)
	})
}

// ErrorPage is the full page shown for failed non-datastar requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(w *writer) {
		title := http.StatusText(p.StatusCode)
		if title == "" {
			title = "Error"
		}

		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		w.text(title)
		w.raw(` | InterviewPro</title></head><body class="flex h-screen items-center justify-center bg-gray-50"><div class="card text-center" data-status="`)
		w.num(p.StatusCode)
		w.raw(`"><h1 class="text-5xl font-bold">`)
		w.num(p.StatusCode)
		w.raw(`</h1><p class="text-lg">`)
		w.text(p.Message)
		w.raw(`</p>`)
		if p.Detail != "" {
			w.raw(`<pre class="text-left text-sm text-gray-500">`)
			w.text(p.Detail)
			w.raw(`</pre>`)
		}
		if p.RequestID != "" {
			w.raw(`<p class="text-xs text-gray-400">Request ID: `)
			w.text(p.RequestID)
			w.raw(`</p>`)
		}
		if p.RetryURL != "" {
			w.raw(`<a class="btn" href="`)
			w.text(p.RetryURL)
			w.raw(`">Try again</a>`)
		}
		w.raw(`</div></body></html>`)
	})
}

// ErrorToast is prepended to the toast container on datastar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(w *writer) {
		kind := p.Type
		if kind == "" {
			kind = "error"
		}
		w.raw(`<div class="toast toast-`)
		w.text(kind)
		w.raw(`" role="alert">`)
		w.text(p.Message)
		if p.RequestID != "" {
			w.raw(` <span class="text-xs opacity-70">(`)
			w.text(p.RequestID)
			w.raw(`)</span>`)
		}
		w.raw(`</div>`)
	})
}

// Default returns the module's built-in views.
func Default() *reports.Views {
	return &reports.Views{
		Layout:          Layout,
		PlanBadge:       PlanBadge,
		ResumeReport:    ResumeReport,
		InterviewReport: InterviewReport,
		PlansPage:       PlansPage,
		ErrorPage:       ErrorPage,
		ErrorToast:      ErrorToast,
	}
}
