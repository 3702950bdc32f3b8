package reports

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/interviewpro/handler"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

// Views holds the components the module renders. Every field is required.
type Views struct {
	Layout          func(LayoutParams) templ.Component
	PlanBadge       func(entitlement.Tier) templ.Component
	ResumeReport    func(ResumeReport) templ.Component
	InterviewReport func(InterviewReport) templ.Component
	PlansPage       func(PlansPageParams) templ.Component
	ErrorPage       func(handler.ErrorPageParams) templ.Component
	ErrorToast      func(handler.ErrorToastParams) templ.Component
}

// LayoutParams describes a full page.
type LayoutParams struct {
	Title string
	// Path is the current request path, used to highlight navigation.
	Path    string
	Tier    entitlement.Tier
	Content templ.Component
	// StreamURL, when set, opens a live update stream on page load.
	StreamURL string
}

// PlansPageParams describes the standalone plan picker.
type PlansPageParams struct {
	Plans     []entitlement.Plan
	Current   entitlement.Tier
	ActionURL func(entitlement.Tier) string
}

// BadgeID is the DOM id of the current plan badge.
const BadgeID = "plan-badge"
