package dunk

import (
	"encoding/json"
	"net/http"
	"time"

	"Dunklab/internal/calc/respond"
	"Dunklab/pkg/metrics"
)

// Slug names the calculator in routes, metrics and the catalog.
const Slug = "dunk"

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	r.Body = http.MaxBytesReader(w, r.Body, respond.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	warnings, err := input.Validate()
	if err != nil {
		metrics.RecordCalculation(Slug, metrics.OutcomeInvalid)
		respond.Invalid(w, err)
		return
	}
	start := time.Now()
	res := Calculate(input)
	metrics.ObserveCalculation(Slug, time.Since(start))
	respond.JSON(w, http.StatusOK, respond.Envelope{Result: res, Warnings: warnings})
}
