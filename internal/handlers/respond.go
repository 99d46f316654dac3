package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ammica/fuel-backend/internal/services"
)

const maxBodyBytes = 1_048_576

// MessageResponse is the success body for writes.
type MessageResponse struct {
	Message string `json:"message" example:"Sale logged successfully"`
}

// WarningResponse is returned when a write was a no-op.
type WarningResponse struct {
	Warning string `json:"warning" example:"Customer already exists"`
}

// decodeJSONBody decodes a single JSON object into dst. Unknown fields are
// ignored. It writes the 400 response itself and reports whether decoding
// succeeded.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		logrus.WithField("component", "http").WithError(err).Debug("invalid request body")
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}

	return true
}

// writeServiceError maps service errors onto status codes. Anything that is
// not a validation or not-found error is a 500 carrying the error message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		services.SendErrorResponse(w, validationErr.Message, http.StatusBadRequest, validationErr)
	case errors.As(err, &notFoundErr):
		services.SendErrorResponse(w, notFoundErr.Error(), http.StatusNotFound, nil)
	default:
		logrus.WithFields(logrus.Fields{
			"component": "http",
			"method":    r.Method,
			"path":      r.URL.Path,
		}).WithError(err).Error("request failed")
		services.SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
	}
}
