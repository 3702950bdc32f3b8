// Package reports serves the protected report pages of InterviewPro and the
// plan selection flow that unlocks them.
//
// Every report page wraps its content in a gate.Gate bound to the session's
// entitlement.State. Selecting a plan only changes that state; pages opened
// in the browser pick the change up over a datastar stream.
//
// Routes:
//
//	GET  /                              redirect to /resume-report
//	GET  /resume-report                 gated resume analysis
//	GET  /interview-report              gated interview report
//	GET  /plans                         plan picker
//	POST /subscription/plan/{tier}      select a plan, redirect back
//	GET  /subscription                  JSON: current tier and plans
//	GET  /access/{feature}              JSON: access decision
//	GET  /subscription/stream/{feature} datastar stream of gate updates
//
// The module expects session.Manager.Middleware in front of its router.
package reports
