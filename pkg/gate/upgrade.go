package gate

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

// UpgradeSurface renders the plan picker shown over locked content.
// Each plan gets a "Get {Name}" button posting to actionURL(plan.Tier).
// The plan matching current is marked as the active one.
func UpgradeSurface(plans []entitlement.Plan, current entitlement.Tier, actionURL func(entitlement.Tier) string) templ.Component {
	if actionURL == nil {
		actionURL = DefaultActionURL
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="fixed inset-0 bg-background/80 backdrop-blur-lg z-50 flex items-center justify-center p-4" role="dialog" aria-modal="true" aria-labelledby="upgrade-title" data-upgrade-surface>`)
		hw.raw(`<div class="w-full max-w-4xl"><div class="text-center mb-8">`)
		hw.raw(`<h2 id="upgrade-title" class="text-3xl font-bold mb-2">Choose Your Plan</h2>`)
		hw.raw(`<p class="text-muted-foreground">Unlock advanced features and take your interview skills to the next level</p>`)
		hw.raw(`</div><div class="grid grid-cols-1 md:grid-cols-2 gap-6">`)

		for _, p := range plans {
			planCard(hw, p, p.Tier == current, actionURL(p.Tier))
		}

		hw.raw(`</div></div></div>`)
		return hw.err
	})
}

func planCard(hw *htmlWriter, p entitlement.Plan, active bool, action string) {
	class := "card relative"
	if p.Recommended {
		class += " border-primary shadow-lg"
	}

	hw.raw(`<div class="`)
	hw.text(class)
	hw.raw(`" data-plan="`)
	hw.text(string(p.Tier))
	hw.raw(`" aria-label="`)
	hw.text(p.Name + " (" + p.PriceLabel() + ")")
	hw.raw(`"`)
	if active {
		hw.raw(` aria-current="true"`)
	}
	hw.raw(`>`)

	if p.Recommended {
		hw.raw(`<span class="badge absolute -top-2 left-1/2 -translate-x-1/2 bg-primary">Most Popular</span>`)
	}

	hw.raw(`<div class="text-center pb-4"><h3 class="text-2xl">`)
	hw.text(p.Name)
	hw.raw(`</h3><div class="text-3xl font-bold">`)
	hw.text(p.Price)
	hw.raw(`<span class="text-lg font-normal text-muted-foreground">`)
	hw.text(p.Period)
	hw.raw(`</span></div></div>`)

	hw.raw(`<ul class="space-y-3">`)
	for _, f := range p.Features {
		hw.raw(`<li class="flex items-start"><span class="text-sm">`)
		hw.text(f)
		hw.raw(`</span></li>`)
	}
	hw.raw(`</ul>`)

	hw.raw(`<form method="post" action="`)
	hw.text(action)
	hw.raw(`"><button type="submit" class="w-full`)
	if !p.Recommended {
		hw.raw(` variant-outline`)
	}
	hw.raw(`" data-on-click__prevent="@post('`)
	hw.text(action)
	hw.raw(`')"`)
	if active {
		hw.raw(` disabled`)
	}
	hw.raw(`>`)
	if active {
		hw.raw(`Current plan`)
	} else {
		hw.text("Get " + p.Name)
	}
	hw.raw(`</button></form></div>`)
}

// htmlWriter keeps the first write error so markup can be emitted without
// checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}
