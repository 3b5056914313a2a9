package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hibiscushealth/backend/commerce"
)

// API provides the REST endpoints over the commerce service.
type API struct {
	svc *commerce.Service
	log zerolog.Logger
}

func NewAPI(svc *commerce.Service, log zerolog.Logger) *API {
	return &API{svc: svc, log: log}
}

// RegisterRoutes registers all endpoints on the given mux.
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /products", a.getProducts)
	mux.HandleFunc("POST /products", a.createProduct)
	mux.HandleFunc("GET /orders", a.getOrders)
	mux.HandleFunc("POST /orders", a.createOrder)
	mux.HandleFunc("GET /subscriptions", a.getSubscriptionPlans)
	mux.HandleFunc("GET /user-subscriptions", a.getUserSubscriptions)
}
