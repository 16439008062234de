// Package respond writes the JSON bodies shared by calculator handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"Dunklab/internal/calc/validate"
)

// MaxBodyBytes caps every calculator request body.
const MaxBodyBytes = 64 << 10

// Envelope wraps a calculator result.
type Envelope struct {
	Result   any      `json:"result"`
	Warnings []string `json:"warnings,omitempty"`
}

type errorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Fields  []validate.FieldError `json:"fields,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a {code, message} body. Validation errors also carry fields.
func Error(w http.ResponseWriter, status int, code string, err error) {
	body := errorResponse{Code: code, Message: http.StatusText(status)}
	if err != nil {
		body.Message = err.Error()
	}
	var verr *validate.Error
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	JSON(w, status, body)
}

// Invalid writes the 422 response for a failed validation.
func Invalid(w http.ResponseWriter, err error) {
	Error(w, http.StatusUnprocessableEntity, "invalid_input", err)
}

// BadPayload writes the 400 response for an undecodable body.
func BadPayload(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "invalid_payload", errors.New("invalid request payload"))
}
