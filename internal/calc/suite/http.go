package suite

import (
	"errors"
	"io"
	"net/http"

	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/validate"
	"github.com/gorilla/mux"
)

// Load runs the calculator named by the {slug} route variable on the
// request body.
func (r *Registry) Load(req *http.Request) (*Outcome, error) {
	raw, err := io.ReadAll(io.LimitReader(req.Body, respond.MaxBodyBytes))
	if err != nil {
		return nil, errors.Join(ErrBadPayload, err)
	}
	return r.Run(mux.Vars(req)["slug"], raw)
}

// Fail writes the response for an error returned by Run or Load.
func Fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownCalculator):
		respond.Error(w, http.StatusNotFound, "unknown_calculator", err)
	case errors.Is(err, ErrBadPayload):
		respond.BadPayload(w)
	case errors.Is(err, validate.ErrInvalidInput):
		respond.Invalid(w, err)
	default:
		respond.Error(w, http.StatusInternalServerError, "internal", err)
	}
}
