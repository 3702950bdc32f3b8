package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/modules/reports"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

type navItem struct {
	Name string
	Href string
}

var navigation = []navItem{
	{Name: "Resume Report", Href: "/resume-report"},
	{Name: "Interview Report", Href: "/interview-report"},
	{Name: "Plans", Href: "/plans"},
}

// Layout renders the application shell: sidebar navigation with the current
// plan badge, the page content and a toast container for datastar errors.
func Layout(p reports.LayoutParams) templ.Component {
	return component(func(w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.text(p.Title)
		w.raw(` | InterviewPro</title><script type="module" src="`)
		w.text(datastarScript)
		w.raw(`"></script></head><body class="flex h-screen bg-gray-50">`)

		w.raw(`<aside class="w-64 bg-white border-r border-gray-200 flex flex-col"><div class="p-6 border-b border-gray-200"><h1 class="text-xl font-bold text-gray-900">InterviewPro</h1><p class="text-sm text-gray-500">AI Interview Platform</p></div><nav class="flex-1 p-4 space-y-2">`)
		for _, item := range navigation {
			class := "flex items-center px-4 py-3 rounded-lg text-sm font-medium text-gray-600 hover:bg-gray-50"
			if item.Href == p.Path {
				class = "flex items-center px-4 py-3 rounded-lg text-sm font-medium bg-blue-50 text-blue-700"
			}
			w.raw(`<a href="`)
			w.text(item.Href)
			w.raw(`" class="`)
			w.text(class)
			w.raw(`"`)
			if item.Href == p.Path {
				w.raw(` aria-current="page"`)
			}
			w.raw(`>`)
			w.text(item.Name)
			w.raw(`</a>`)
		}
		w.raw(`</nav><div class="p-4 border-t border-gray-200">`)
		w.component(PlanBadge(p.Tier))
		w.raw(`</div></aside>`)

		w.raw(`<main class="flex-1 overflow-auto">`)
		if p.StreamURL != "" {
			w.raw(`<div data-on-load="@get('`)
			w.text(p.StreamURL)
			w.raw(`')"></div>`)
		}
		w.component(p.Content)
		w.raw(`</main><div id="toast-container" class="fixed bottom-4 right-4 space-y-2"></div></body></html>`)
	})
}

// PlanBadge shows the session's current tier.
func PlanBadge(t entitlement.Tier) templ.Component {
	return component(func(w *writer) {
		class := "badge bg-gray-100 text-gray-700"
		if t.Paid() {
			class = "badge bg-blue-600 text-white"
		}
		w.raw(`<span id="`)
		w.text(reports.BadgeID)
		w.raw(`" class="`)
		w.text(class)
		w.raw(`" data-tier="`)
		w.text(t.String())
		w.raw(`">`)
		w.text(tierLabel(t))
		w.raw(` plan</span>`)
	})
}

func tierLabel(t entitlement.Tier) string {
	switch t {
	case entitlement.TierFree:
		return "Free"
	case entitlement.TierBasic:
		return "Basic"
	case entitlement.TierPro:
		return "Pro"
	default:
		return t.String()
	}
}
