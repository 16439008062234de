package catalog

import (
	"errors"
	"net/http"
	"time"

	"Dunklab/internal/calc/respond"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo    Repository
	BaseURL string
	Now     func() time.Time
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Repo.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	respond.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Repo.Get(r.Context(), mux.Vars(r)["slug"])
	if errors.Is(err, ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	respond.JSON(w, http.StatusOK, entry)
}

func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Repo.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	body, err := Sitemap(h.BaseURL, entries, h.now())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (h *Handler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(Robots(h.BaseURL))
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
