package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the single error shape every failure is converted to.
// Details carries the underlying message for diagnostics only.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is used by the liveness and smoke-test endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// SummaryResponse is the success shape of the summarize endpoint.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a 200 message response.
func WriteMessage(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteSummary writes a 200 summary response.
func WriteSummary(w http.ResponseWriter, summary string) error {
	return WriteJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

// WriteBadRequest writes a 400 Bad Request error.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// WriteInternalError writes a 500 Internal Server Error with diagnostics.
func WriteInternalError(w http.ResponseWriter, message, details string) error {
	return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: message, Details: details})
}
