package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper. Field names in
// validation errors follow the json tag so they match the request body.
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &ValidationHelper{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response. validationErr may be a
// validator.ValidationErrors or a *ValidationError; anything else is ignored.
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	errorResp := ErrorResponse{Error: message}

	var fieldErrs validator.ValidationErrors
	var domainErr *ValidationError
	switch {
	case errors.As(validationErr, &fieldErrs):
		errorResp.Details = make(map[string]string)
		for _, err := range fieldErrs {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	case errors.As(validationErr, &domainErr) && len(domainErr.Details) > 0:
		errorResp.Details = domainErr.Details
	}

	SendJSON(w, statusCode, errorResp)
}

// SendJSON writes v as a JSON body with the given status.
func SendJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
