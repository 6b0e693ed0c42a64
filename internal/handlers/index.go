package handlers

import (
	"net/http"

	"github.com/Poovetha/Inventory/internal/httpx"
)

// Index renders the landing page.
func Index(w http.ResponseWriter, r *http.Request) {
	render(w, "index.html", map[string]any{
		"Flash": httpx.PopFlash(w, r),
	})
}
