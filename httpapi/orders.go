package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hibiscushealth/backend/commerce"
)

// getOrders serves lookup by order id, by user, or the full list when
// no filter is given. Every shape joins in the order's line items.
func (a *API) getOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if id := q.Get("id"); id != "" {
		order, err := a.svc.OrderByID(r.Context(), id)
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
		return
	}

	if userID := q.Get("userId"); userID != "" {
		orders, err := a.svc.OrdersByUser(r.Context(), userID)
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}

	orders, err := a.svc.AllOrders(r.Context())
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *API) createOrder(w http.ResponseWriter, r *http.Request) {
	var req commerce.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := a.svc.PlaceOrder(r.Context(), req)
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
