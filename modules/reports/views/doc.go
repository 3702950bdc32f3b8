// Package views contains the default components of the reports module.
//
// Components are plain templ.ComponentFunc values so they compose with
// gate.Render and the handler package's templ responses.
package views
