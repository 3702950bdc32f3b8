package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/modules/reports"
)

// ResumeReport renders the ATS analysis.
func ResumeReport(rep reports.ResumeReport) templ.Component {
	return component(func(w *writer) {
		w.raw(`<section class="p-6 space-y-6" data-report="resume">`)

		w.raw(`<header><h2 class="text-3xl font-bold">Resume Analysis</h2><p class="text-gray-500">`)
		w.text(rep.FileName)
		w.raw(` &middot; uploaded `)
		w.text(rep.UploadDate)
		w.raw(` &middot; `)
		w.num(rep.WordCount)
		w.raw(` words</p></header>`)

		w.raw(`<div class="card text-center"><div class="text-5xl font-bold `)
		w.text(scoreColor(rep.ATSScore))
		w.raw(`" data-ats-score>`)
		w.num(rep.ATSScore)
		w.raw(`</div><p class="text-gray-500">ATS score</p><span class="badge">Grade `)
		w.text(rep.Grade)
		w.raw(`</span></div>`)

		w.raw(`<div class="card"><h3 class="text-lg font-semibold">Section Scores</h3><ul class="space-y-2">`)
		for _, sec := range rep.Sections {
			w.raw(`<li class="flex justify-between"><span class="capitalize">`)
			w.text(sec.Name)
			w.raw(`</span><span class="`)
			w.text(scoreColor(sec.Score))
			w.raw(`">`)
			w.num(sec.Score)
			w.raw(`% &middot; `)
			w.text(strings.ReplaceAll(sec.Status, "_", " "))
			w.raw(`</span></li>`)
		}
		w.raw(`</ul></div>`)

		w.raw(`<div class="card"><h3 class="text-lg font-semibold">Keyword Match</h3><p>`)
		w.num(rep.Keywords.Matched)
		w.raw(` of `)
		w.num(rep.Keywords.Total)
		w.raw(` keywords matched (`)
		w.num(rep.Keywords.Rate())
		w.raw(`%)</p>`)
		if len(rep.Keywords.Missing) > 0 {
			w.raw(`<div class="flex flex-wrap gap-2">`)
			for _, kw := range rep.Keywords.Missing {
				w.raw(`<span class="badge bg-red-100 text-red-700">`)
				w.text(kw)
				w.raw(`</span>`)
			}
			w.raw(`</div>`)
		}
		w.raw(`</div>`)

		w.raw(`<div class="card"><h3 class="text-lg font-semibold">Improvements</h3><ul class="space-y-3">`)
		for _, imp := range rep.Improvements {
			w.raw(`<li><div class="flex items-center gap-2"><span class="badge `)
			w.text(severityColor(imp.Severity))
			w.raw(`">`)
			w.text(imp.Severity)
			w.raw(`</span><strong>`)
			w.text(imp.Category)
			w.raw(`</strong></div><p>`)
			w.text(imp.Issue)
			w.raw(`</p><p class="text-sm text-gray-500">`)
			w.text(imp.Suggestion)
			w.raw(`</p></li>`)
		}
		w.raw(`</ul></div>`)

		w.raw(`<div class="grid grid-cols-1 md:grid-cols-2 gap-6"><div class="card"><h3 class="text-lg font-semibold">Strengths</h3><ul class="list-disc pl-5">`)
		for _, s := range rep.Strengths {
			w.raw(`<li>`)
			w.text(s)
			w.raw(`</li>`)
		}
		w.raw(`</ul></div><div class="card"><h3 class="text-lg font-semibold">ATS Compatibility</h3><dl class="space-y-1">`)
		for _, c := range rep.Compatibility {
			w.raw(`<div class="flex justify-between"><dt>`)
			w.text(c.Aspect)
			w.raw(`</dt><dd class="text-gray-600">`)
			w.text(c.Verdict)
			w.raw(`</dd></div>`)
		}
		w.raw(`</dl></div></div></section>`)
	})
}
