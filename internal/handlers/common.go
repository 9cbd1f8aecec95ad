package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/session"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. The dataset counts as a dependency; the model does
// not, since it is read lazily on predict.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]bool{}
	if h.readiness != nil {
		checks = h.readiness.Checks(r.Context())
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps a service error onto a response. Absent files are 503,
// bad selections 400, anything else 500 with the fallback message.
func (h *Handler) serviceError(w http.ResponseWriter, err error, fallback string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		h.errorResponse(w, http.StatusServiceUnavailable, session.DatasetMissingMessage)
	case errors.Is(err, inference.ErrModelNotFound):
		h.errorResponse(w, http.StatusServiceUnavailable, session.ModelMissingMessage)
	case errors.Is(err, logic.ErrUnknownValue), errors.Is(err, logic.ErrUnknownColumn):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, dataset.ErrSchema):
		h.logger.Errorw("Dataset unusable", append(keysAndValues, "error", err)...)
		h.errorResponse(w, http.StatusServiceUnavailable, "Dataset could not be read: "+err.Error())
	default:
		h.logger.Errorw(fallback, append(keysAndValues, "error", err)...)
		h.errorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// requiredQuery returns a non-empty query parameter or writes a 400
func (h *Handler) requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing query parameter: "+name)
		return "", false
	}
	return v, true
}

func (h *Handler) requiredIntQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw, ok := h.requiredQuery(w, r, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return v, true
}

// pathParam returns a decoded URL parameter. chi leaves it escaped when the
// request path carries encoded slashes.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(v); err == nil {
			return u
		}
	}
	return v
}

func (h *Handler) intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(pathParam(r, name))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return v, true
}
