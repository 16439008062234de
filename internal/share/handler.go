package share

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/suite"
	"Dunklab/pkg/metrics"
	"github.com/gorilla/mux"
)

type Handler struct {
	Suite   *suite.Registry
	Signer  *Signer
	BaseURL string
}

type createdLink struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sharedCalculation struct {
	Calculator string   `json:"calculator"`
	Input      any      `json:"input"`
	Result     any      `json:"result"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Create validates the posted input and returns a link that reproduces it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	out, err := h.Suite.Load(r)
	if err != nil {
		suite.Fail(w, err)
		return
	}
	input, err := json.Marshal(out.Input)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	token, exp, err := h.Signer.Sign(out.Slug, input)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	metrics.RecordShareLink("created")
	respond.JSON(w, http.StatusCreated, createdLink{
		Token:     token,
		URL:       strings.TrimRight(h.BaseURL, "/") + "/api/shared/" + token,
		ExpiresAt: exp,
	})
}

// Resolve verifies the token and recomputes the shared calculation.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	link, err := h.Signer.Parse(mux.Vars(r)["token"])
	if err != nil {
		metrics.RecordShareLink("rejected")
		respond.Error(w, http.StatusUnauthorized, "invalid_token", ErrInvalidToken)
		return
	}
	out, err := h.Suite.Run(link.Calculator, link.Input)
	if err != nil {
		suite.Fail(w, err)
		return
	}
	metrics.RecordShareLink("resolved")
	respond.JSON(w, http.StatusOK, sharedCalculation{
		Calculator: out.Slug,
		Input:      out.Input,
		Result:     out.Result,
		Warnings:   out.Warnings,
	})
}
