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

type ProductHandler struct {
	Store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler { return &ProductHandler{Store: s} }

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ListProducts()
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "products/list.html", map[string]any{
		"Products": products,
		"Flash":    httpx.PopFlash(w, r),
	})
}

func (h *ProductHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, "products/form.html", map[string]any{
		"Form":   map[string]string{},
		"Errors": validate.Violations{},
		"Flash":  httpx.PopFlash(w, r),
	})
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	name, description, v := parseProductForm(r)
	if !v.Empty() {
		render(w, "products/form.html", map[string]any{
			"Form":   map[string]string{"name": name, "description": description},
			"Errors": v,
		})
		return
	}
	p := models.Product{Name: name, Description: description}
	if err := h.Store.CreateProduct(&p); err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "success", "Product created")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, err := h.Store.GetProduct(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "products/form.html", map[string]any{
		"IsEdit": true,
		"ID":     p.ProductID,
		"Form":   map[string]string{"name": p.Name, "description": p.Description},
		"Errors": validate.Violations{},
		"Flash":  httpx.PopFlash(w, r),
	})
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	name, description, v := parseProductForm(r)
	if !v.Empty() {
		render(w, "products/form.html", map[string]any{
			"IsEdit": true,
			"ID":     id,
			"Form":   map[string]string{"name": name, "description": description},
			"Errors": v,
		})
		return
	}
	err := h.Store.UpdateProduct(&models.Product{ProductID: id, Name: name, Description: description})
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "success", "Product updated")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.Store.DeleteProduct(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "info", "Product deleted")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func parseProductForm(r *http.Request) (name, description string, v validate.Violations) {
	_ = r.ParseForm()
	name = strings.TrimSpace(r.FormValue("name"))
	description = strings.TrimSpace(r.FormValue("description"))
	v = validate.Violations{}
	validate.Required("name", name, v)
	validate.MaxLen("name", name, 120, v)
	validate.MaxLen("description", description, 255, v)
	return name, description, v
}
