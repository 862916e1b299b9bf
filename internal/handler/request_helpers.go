package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/Materials_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// validateQuery validates a query struct and writes a 400 response on failure.
// If it returns false, the response has already been written.
func validateQuery(w http.ResponseWriter, r *http.Request, q interface{}) bool {
	if err := GetValidator().ValidateStruct(q); err != nil {
		logger.FromContext(r.Context()).Debug("Query validation failed", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequest,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntQueryParam parses an optional integer query parameter.
// A missing parameter yields nil; a malformed one writes a 400 and returns false.
func getIntQueryParam(w http.ResponseWriter, r *http.Request, paramName string) (*int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Invalid %s query parameter", paramName), "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return nil, false
	}
	return &n, true
}
