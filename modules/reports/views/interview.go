package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/modules/reports"
)

// InterviewReport renders the interview evaluation.
func InterviewReport(rep reports.InterviewReport) templ.Component {
	return component(func(w *writer) {
		w.raw(`<section class="p-6 space-y-6" data-report="interview">`)

		w.raw(`<header><h2 class="text-3xl font-bold">Interview Report</h2><p class="text-gray-500">`)
		w.text(rep.Candidate)
		w.raw(` &middot; `)
		w.text(rep.Position)
		w.raw(` &middot; `)
		w.text(rep.InterviewDate)
		w.raw(` &middot; `)
		w.text(rep.Duration)
		w.raw(`</p></header>`)

		w.raw(`<div class="card text-center"><div class="text-5xl font-bold `)
		w.text(scoreColor(rep.OverallScore))
		w.raw(`" data-overall-score>`)
		w.num(rep.OverallScore)
		w.raw(`</div><p class="text-gray-500">Overall score</p></div>`)

		w.raw(`<div class="grid grid-cols-1 md:grid-cols-2 gap-6">`)
		traits(w, "Communication", rep.Personality)
		traits(w, "Big Five Personality", rep.BigFive)
		w.raw(`</div>`)

		w.raw(`<div class="card"><h3 class="text-lg font-semibold">Questions</h3><ol class="space-y-4">`)
		for _, q := range rep.Questions {
			w.raw(`<li><p class="font-medium">`)
			w.text(q.Question)
			w.raw(`</p><p><span class="text-gray-500">Answer:</span> `)
			w.text(q.Answer)
			w.raw(`</p><p><span class="text-gray-500">Strong answer:</span> `)
			w.text(q.PerfectAnswer)
			w.raw(`</p><p class="text-sm"><span class="`)
			w.text(scoreColor(q.Score))
			w.raw(`">`)
			w.num(q.Score)
			w.raw(`%</span> `)
			w.text(q.Feedback)
			w.raw(`</p></li>`)
		}
		w.raw(`</ol></div>`)

		w.raw(`<div class="card"><h3 class="text-lg font-semibold">Resume Fit <span class="`)
		w.text(scoreColor(rep.ResumeFit.Score))
		w.raw(`">`)
		w.num(rep.ResumeFit.Score)
		w.raw(`%</span></h3><div class="grid grid-cols-1 md:grid-cols-2 gap-4">`)
		list(w, "Strengths", rep.ResumeFit.Strengths)
		list(w, "Gaps", rep.ResumeFit.Gaps)
		w.raw(`</div></div></section>`)
	})
}

func traits(w *writer, title string, scores []reports.TraitScore) {
	w.raw(`<div class="card"><h3 class="text-lg font-semibold">`)
	w.text(title)
	w.raw(`</h3><ul class="space-y-2">`)
	for _, t := range scores {
		w.raw(`<li><div class="flex justify-between"><span>`)
		w.text(t.Trait)
		w.raw(`</span><span class="`)
		w.text(scoreColor(t.Score))
		w.raw(`">`)
		w.num(t.Score)
		w.raw(`</span></div>`)
		if t.Description != "" {
			w.raw(`<p class="text-sm text-gray-500">`)
			w.text(t.Description)
			w.raw(`</p>`)
		}
		w.raw(`</li>`)
	}
	w.raw(`</ul></div>`)
}

func list(w *writer, title string, items []string) {
	w.raw(`<div><h4 class="font-medium">`)
	w.text(title)
	w.raw(`</h4><ul class="list-disc pl-5">`)
	for _, it := range items {
		w.raw(`<li>`)
		w.text(it)
		w.raw(`</li>`)
	}
	w.raw(`</ul></div>`)
}
