package httpapi

import "net/http"

// getSubscriptionPlans serves a plan by id or the full plan catalog.
func (a *API) getSubscriptionPlans(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		plan, err := a.svc.PlanByID(r.Context(), id)
		if err != nil {
			writeServiceError(a.log, w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
		return
	}

	plans, err := a.svc.AllPlans(r.Context())
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (a *API) getUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Missing required parameter: userId")
		return
	}

	subs, err := a.svc.SubscriptionsForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
