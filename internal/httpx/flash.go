package httpx

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const flashCookie = "flash"

// Flash is a one-shot notice carried across a redirect in a cookie.
// Kind is a CSS-ish category: success, info, warning.
type Flash struct {
	Kind    string
	Message string
}

// SetFlash stores a notice to be shown on the next rendered page.
func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash returns the pending notice, if any, and clears the cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	raw, derr := url.QueryUnescape(c.Value)
	if derr != nil {
		raw = c.Value
	}
	kind, msg, found := strings.Cut(raw, "|")
	if !found {
		return &Flash{Kind: "info", Message: raw}
	}
	return &Flash{Kind: kind, Message: msg}
}
