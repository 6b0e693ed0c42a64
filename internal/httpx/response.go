package httpx

import (
	"encoding/json"
	"net/http"
)

// The JSON surface here is small: pages are rendered HTML, so JSON only
// carries the health probe and the fallback for requests that cannot
// render a page.

type statusPayload struct {
	Status string `json:"status"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// fixed structs of strings, encoding cannot fail
	_ = json.NewEncoder(w).Encode(payload)
}

// Status writes a {"status": ...} body, e.g. ok or degraded from the
// health probe.
func Status(w http.ResponseWriter, code int, status string) {
	writeJSON(w, code, statusPayload{Status: status})
}

// Error writes an {"error": ...} body.
func Error(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorPayload{Error: msg})
}
