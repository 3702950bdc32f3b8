package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer keeps the first write error so markup can be emitted without
// checking every call.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) num(n int) {
	w.raw(strconv.Itoa(n))
}

func (w *writer) component(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, w: out}
		fn(w)
		return w.err
	})
}

// scoreColor maps a percentage to the traffic light text color.
func scoreColor(score int) string {
	switch {
	case score >= 80:
		return "text-green-600"
	case score >= 60:
		return "text-yellow-600"
	default:
		return "text-red-600"
	}
}

func severityColor(severity string) string {
	switch severity {
	case "high":
		return "text-red-600 bg-red-100"
	case "medium":
		return "text-yellow-600 bg-yellow-100"
	case "low":
		return "text-blue-600 bg-blue-100"
	default:
		return "text-gray-600 bg-gray-100"
	}
}
