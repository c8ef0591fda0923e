package handler

import (
	"encoding/json"
	"net/http"

	"blog-be/pkg/apperr"
	"blog-be/pkg/logger"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError maps an error onto the public {"error": message} shape. Internal
// causes are logged server-side and never serialized.
func writeError(w http.ResponseWriter, err error, log *logger.Logger) {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindInternal {
		log.WithError(appErr).Error("Request failed")
	} else {
		log.WithError(appErr).Debug("Request rejected")
	}

	writeJSON(w, appErr.StatusCode, map[string]string{"error": appErr.Message}, log)
}
