package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Poovetha/Inventory/internal/httpx"
	"github.com/Poovetha/Inventory/internal/metrics"
	"github.com/Poovetha/Inventory/internal/models"
	"github.com/Poovetha/Inventory/internal/store"
	"github.com/Poovetha/Inventory/internal/validate"
)

type MovementHandler struct {
	Store   *store.Store
	Metrics *metrics.Metrics
}

func NewMovementHandler(s *store.Store, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{Store: s, Metrics: m}
}

// movementRow is a movement with its references resolved for display.
// Deleted products/locations show as "#id" rather than breaking the page.
type movementRow struct {
	models.Movement
	ProductName string
	FromName    string
	ToName      string
}

func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	movements, err := h.Store.ListMovements()
	if err != nil {
		serverError(w, err)
		return
	}
	productNames, locationNames, err := h.nameIndexes()
	if err != nil {
		serverError(w, err)
		return
	}
	rows := make([]movementRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, movementRow{
			Movement:    m,
			ProductName: lookupName(productNames, m.ProductID),
			FromName:    lookupOptional(locationNames, m.FromLocation),
			ToName:      lookupOptional(locationNames, m.ToLocation),
		})
	}
	render(w, "movements/list.html", map[string]any{
		"Movements": rows,
		"Flash":     httpx.PopFlash(w, r),
	})
}

func (h *MovementHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.formData(map[string]string{}, nil, false, "")
	if err != nil {
		serverError(w, err)
		return
	}
	data["Flash"] = httpx.PopFlash(w, r)
	render(w, "movements/form.html", data)
}

func (h *MovementHandler) Add(w http.ResponseWriter, r *http.Request) {
	form, v := parseMovementForm(r, false)
	if v.Empty() {
		m := models.Movement{
			MovementID:   form.movementID,
			ProductID:    form.productID,
			FromLocation: form.from,
			ToLocation:   form.to,
			Qty:          form.qty,
		}
		err := h.Store.CreateMovement(&m)
		switch {
		case errors.Is(err, store.ErrDuplicateKey):
			v["movement_id"] = "a movement with this id already exists"
		case err != nil:
			serverError(w, err)
			return
		default:
			h.Metrics.MovementsRecorded.Inc()
			httpx.SetFlash(w, "success", "Movement recorded")
			http.Redirect(w, r, "/movements", http.StatusSeeOther)
			return
		}
	}
	data, err := h.formData(form.raw, v, false, "")
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "movements/form.html", data)
}

func (h *MovementHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.Store.GetMovement(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	raw := map[string]string{
		"product_id":    strconv.FormatUint(uint64(m.ProductID), 10),
		"from_location": optionalString(m.FromLocation),
		"to_location":   optionalString(m.ToLocation),
		"qty":           strconv.Itoa(m.Qty),
	}
	data, err := h.formData(raw, nil, true, m.MovementID)
	if err != nil {
		serverError(w, err)
		return
	}
	data["Flash"] = httpx.PopFlash(w, r)
	render(w, "movements/form.html", data)
}

func (h *MovementHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.GetMovement(id); errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}
	// the id comes from the URL; a tampered movement_id field is ignored
	form, v := parseMovementForm(r, true)
	if v.Empty() {
		err := h.Store.UpdateMovement(id, form.productID, form.from, form.to, form.qty)
		if err != nil {
			serverError(w, err)
			return
		}
		httpx.SetFlash(w, "success", "Movement updated")
		http.Redirect(w, r, "/movements", http.StatusSeeOther)
		return
	}
	data, err := h.formData(form.raw, v, true, id)
	if err != nil {
		serverError(w, err)
		return
	}
	render(w, "movements/form.html", data)
}

func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.Store.DeleteMovement(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	httpx.SetFlash(w, "info", "Movement deleted")
	http.Redirect(w, r, "/movements", http.StatusSeeOther)
}

type movementForm struct {
	movementID string
	productID  uint
	from, to   *uint
	qty        int
	raw        map[string]string
}

// parseMovementForm reads and validates the submitted fields. Field errors
// and business-rule failures land in the same Violations map so the form can
// show them inline; the checks match on create and edit except that edit
// takes the movement id from the URL.
func parseMovementForm(r *http.Request, isEdit bool) (movementForm, validate.Violations) {
	_ = r.ParseForm()
	f := movementForm{
		movementID: strings.TrimSpace(r.FormValue("movement_id")),
		raw: map[string]string{
			"movement_id":   strings.TrimSpace(r.FormValue("movement_id")),
			"product_id":    r.FormValue("product_id"),
			"from_location": r.FormValue("from_location"),
			"to_location":   r.FormValue("to_location"),
			"qty":           r.FormValue("qty"),
		},
	}
	v := validate.Violations{}
	if !isEdit {
		validate.Required("movement_id", f.movementID, v)
		validate.MaxLen("movement_id", f.movementID, 64, v)
	}
	if n, err := strconv.ParseUint(r.FormValue("product_id"), 10, 32); err == nil && n > 0 {
		f.productID = uint(n)
	} else {
		v["product_id"] = "required"
	}
	f.from = optionalID(r.FormValue("from_location"), "from_location", v)
	f.to = optionalID(r.FormValue("to_location"), "to_location", v)
	if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue("qty"))); err == nil {
		f.qty = n
	} else {
		v["qty"] = "must be a whole number"
	}
	if v.Empty() {
		switch err := validate.Movement(f.from, f.to, f.qty); {
		case errors.Is(err, validate.ErrMissingEndpoint):
			v["from_location"] = err.Error()
		case errors.Is(err, validate.ErrSameEndpoint):
			v["to_location"] = err.Error()
		case errors.Is(err, validate.ErrInvalidQuantity):
			v["qty"] = err.Error()
		}
	}
	return f, v
}

func optionalID(raw, field string, v validate.Violations) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		v[field] = "invalid location"
		return nil
	}
	id := uint(n)
	return &id
}

func optionalString(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func (h *MovementHandler) formData(form map[string]string, v validate.Violations, isEdit bool, id string) (map[string]any, error) {
	products, err := h.Store.ListProducts()
	if err != nil {
		return nil, err
	}
	locations, err := h.Store.ListLocations()
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = validate.Violations{}
	}
	data := map[string]any{
		"Form":      form,
		"Products":  products,
		"Locations": locations,
		"IsEdit":    isEdit,
		"ID":        id,
		"Errors":    v,
	}
	return data, nil
}

func (h *MovementHandler) nameIndexes() (map[uint]string, map[uint]string, error) {
	products, err := h.Store.ListProducts()
	if err != nil {
		return nil, nil, err
	}
	locations, err := h.Store.ListLocations()
	if err != nil {
		return nil, nil, err
	}
	productNames := make(map[uint]string, len(products))
	for _, p := range products {
		productNames[p.ProductID] = p.Name
	}
	locationNames := make(map[uint]string, len(locations))
	for _, l := range locations {
		locationNames[l.LocationID] = l.Name
	}
	return productNames, locationNames, nil
}

func lookupName(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func lookupOptional(names map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	return lookupName(names, *id)
}
