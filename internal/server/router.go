package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Poovetha/Inventory/internal/handlers"
	"github.com/Poovetha/Inventory/internal/httpx"
	"github.com/Poovetha/Inventory/internal/metrics"
	"github.com/Poovetha/Inventory/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(st *store.Store, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(withRecover)
	r.Use(requestLogger)
	r.Use(instrument(m))

	ph := handlers.NewProductHandler(st)
	lh := handlers.NewLocationHandler(st)
	mh := handlers.NewMovementHandler(st, m)
	rh := handlers.NewReportHandler(st)

	r.Get("/", handlers.Index)

	r.Get("/products", ph.List)
	r.Get("/products/add", ph.AddForm)
	r.Post("/products/add", ph.Add)
	r.Get("/products/{id}/edit", ph.EditForm)
	r.Post("/products/{id}/edit", ph.Edit)
	r.Post("/products/{id}/delete", ph.Delete)

	r.Get("/locations", lh.List)
	r.Get("/locations/add", lh.AddForm)
	r.Post("/locations/add", lh.Add)
	r.Get("/locations/{id}/edit", lh.EditForm)
	r.Post("/locations/{id}/edit", lh.Edit)
	r.Post("/locations/{id}/delete", lh.Delete)

	r.Get("/movements", mh.List)
	r.Get("/movements/add", mh.AddForm)
	r.Post("/movements/add", mh.Add)
	r.Get("/movements/{id}/edit", mh.EditForm)
	r.Post("/movements/{id}/edit", mh.Edit)
	r.Post("/movements/{id}/delete", mh.Delete)

	r.Get("/report", rh.Stock)

	r.Get("/healthz", healthz(st))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

func healthz(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.DB().Exec("SELECT 1").Error; err != nil {
			httpx.Status(w, http.StatusServiceUnavailable, "degraded")
			return
		}
		httpx.Status(w, http.StatusOK, "ok")
	}
}
