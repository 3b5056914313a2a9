package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hibiscushealth/backend/commerce"
)

// getProducts serves lookup by id, by slug, the featured subset, or
// the whole catalog when no filter is given.
func (a *API) getProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if id := q.Get("id"); id != "" {
		product, err := a.svc.ProductByID(r.Context(), id)
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
		return
	}

	if slug := q.Get("slug"); slug != "" {
		product, err := a.svc.ProductBySlug(r.Context(), slug)
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
		return
	}

	if q.Get("featured") == "true" {
		products, err := a.svc.FeaturedProducts(r.Context())
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	products, err := a.svc.AllProducts(r.Context())
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var req commerce.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := a.svc.CreateProduct(r.Context(), req)
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}
