package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hibiscushealth/backend/commerce"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error onto a status code. Expected
// failures keep their message; anything unclassified is logged and
// reported opaquely.
func writeServiceError(log zerolog.Logger, w http.ResponseWriter, err error) {
	switch commerce.KindOf(err) {
	case commerce.KindInvalidInput:
		writeError(w, http.StatusBadRequest, commerce.MessageOf(err))
	case commerce.KindNotFound:
		writeError(w, http.StatusNotFound, commerce.MessageOf(err))
	case commerce.KindStoreFailure:
		log.Error().Err(err).Msg("store failure")
		writeError(w, http.StatusInternalServerError, commerce.MessageOf(err))
	default:
		log.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
