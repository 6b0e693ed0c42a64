package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Poovetha/Inventory/internal/httpx"
	"github.com/Poovetha/Inventory/internal/models"
	"github.com/Poovetha/Inventory/internal/store"
	"github.com/Poovetha/Inventory/internal/validate"
)

type LocationHandler struct {
	Store *store.Store
}

func NewLocationHandler(s *store.Store) *LocationHandler { return &LocationHandler{Store: s} }

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Store.ListLocations()
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "locations/list.html", map[string]any{
		"Locations": locations,
		"Flash":     httpx.PopFlash(w, r),
	})
}

func (h *LocationHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, "locations/form.html", map[string]any{
		"Form":   map[string]string{},
		"Errors": validate.Violations{},
		"Flash":  httpx.PopFlash(w, r),
	})
}

func (h *LocationHandler) Add(w http.ResponseWriter, r *http.Request) {
	name, address, v := parseLocationForm(r)
	if !v.Empty() {
		render(w, "locations/form.html", map[string]any{
			"Form":   map[string]string{"name": name, "address": address},
			"Errors": v,
		})
		return
	}
	l := models.Location{Name: name, Address: address}
	if err := h.Store.CreateLocation(&l); err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "success", "Location created")
	http.Redirect(w, r, "/locations", http.StatusSeeOther)
}

func (h *LocationHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	l, err := h.Store.GetLocation(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "locations/form.html", map[string]any{
		"IsEdit": true,
		"ID":     l.LocationID,
		"Form":   map[string]string{"name": l.Name, "address": l.Address},
		"Errors": validate.Violations{},
		"Flash":  httpx.PopFlash(w, r),
	})
}

func (h *LocationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	name, address, v := parseLocationForm(r)
	if !v.Empty() {
		render(w, "locations/form.html", map[string]any{
			"IsEdit": true,
			"ID":     id,
			"Form":   map[string]string{"name": name, "address": address},
			"Errors": v,
		})
		return
	}
	err := h.Store.UpdateLocation(&models.Location{LocationID: id, Name: name, Address: address})
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "success", "Location updated")
	http.Redirect(w, r, "/locations", http.StatusSeeOther)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.Store.DeleteLocation(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "info", "Location deleted")
	http.Redirect(w, r, "/locations", http.StatusSeeOther)
}

func parseLocationForm(r *http.Request) (name, address string, v validate.Violations) {
	_ = r.ParseForm()
	name = strings.TrimSpace(r.FormValue("name"))
	address = strings.TrimSpace(r.FormValue("address"))
	v = validate.Violations{}
	validate.Required("name", name, v)
	validate.MaxLen("name", name, 120, v)
	validate.MaxLen("address", address, 255, v)
	return name, address, v
}
