package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url      string
	back     bool
	fallback string
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	target := rr.url
	if rr.back {
		target = rr.fallback
		if p, ok := sameOriginPath(r.Header.Get("Referer"), r); ok {
			target = p
		}
	}

	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(target)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
	return nil
}

// Redirect sends the client to url with 303 See Other, or with a datastar
// redirect event for datastar requests.
func Redirect(url string) Response {
	return redirectResponse{url: url}
}

// RedirectBack redirects to the Referer when it points at this host,
// otherwise to fallback.
func RedirectBack(fallback string) Response {
	return redirectResponse{back: true, fallback: fallback}
}

// sameOriginPath returns the path and query of referer when it belongs to the
// request host. Protocol-relative and foreign URLs are rejected.
func sameOriginPath(referer string, r *http.Request) (string, bool) {
	if referer == "" {
		return "", false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "", false
	}
	if u.Host != "" && u.Host != r.Host {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "", false
	}
	p := u.Path
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p, true
}
