package handlers

import (
	"net/http"

	"github.com/Poovetha/Inventory/internal/httpx"
	"github.com/Poovetha/Inventory/internal/store"
)

type ReportHandler struct {
	Store *store.Store
}

func NewReportHandler(s *store.Store) *ReportHandler { return &ReportHandler{Store: s} }

// Stock renders the per-product, per-location balance derived from the ledger.
func (h *ReportHandler) Stock(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.StockReport()
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "report.html", map[string]any{
		"Rows":  rows,
		"Flash": httpx.PopFlash(w, r),
	})
}
