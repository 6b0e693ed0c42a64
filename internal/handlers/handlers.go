// Package handlers contains the HTTP form handlers. Each entity gets a
// handler struct over the ledger store; validation failures re-render the
// form with the submitted values, successes flash a notice and redirect.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Poovetha/Inventory/internal/view"
)

func render(w http.ResponseWriter, name string, data map[string]any) {
	if err := view.Render(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template render failed")
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

func serverError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// idParam parses the {id} URL segment of product/location routes.
func idParam(r *http.Request) (uint, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
