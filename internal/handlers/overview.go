package handlers

import (
	"net/http"
)

// ============================================================================
// OPTIONS ENDPOINTS
// ============================================================================

// GetOptions returns the selectable clusters, tournaments, teams and features
// @Summary Selection Options
// @Description Distinct values of each picker in first-seen order
// @Tags Options
// @Produce json
// @Success 200 {object} models.Options
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /options [get]
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options.GetOptions(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to get options")
		return
	}
	h.jsonResponse(w, http.StatusOK, opts)
}

// GetClusterTournaments returns the tournaments that have players in a cluster
// @Summary Tournaments of a Cluster
// @Tags Options
// @Produce json
// @Param cluster path int true "Cluster ID"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Unknown cluster"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /clusters/{cluster}/tournaments [get]
func (h *Handler) GetClusterTournaments(w http.ResponseWriter, r *http.Request) {
	cluster, ok := h.intPathParam(w, r, "cluster")
	if !ok {
		return
	}

	list, err := h.options.GetClusterTournaments(r.Context(), cluster)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournaments", "cluster", cluster)
		return
	}
	h.jsonResponse(w, http.StatusOK, list)
}

// ============================================================================
// CLUSTER OVERVIEW ENDPOINTS
// ============================================================================

// GetOverview returns the players of a cluster in a tournament with their mean and median
// @Summary Cluster Overview
// @Description Aggregates are null when the selection matches no players
// @Tags Overview
// @Produce json
// @Param cluster query int true "Cluster ID"
// @Param tournament query string true "Tournament name"
// @Success 200 {object} models.OverallView
// @Failure 400 {object} map[string]string "Unknown selection"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /overview [get]
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	cluster, ok := h.requiredIntQuery(w, r, "cluster")
	if !ok {
		return
	}
	tournament, ok := h.requiredQuery(w, r, "tournament")
	if !ok {
		return
	}

	view, err := h.overview.GetOverview(r.Context(), cluster, tournament)
	if err != nil {
		h.serviceError(w, err, "Failed to get overview", "cluster", cluster, "tournament", tournament)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetOverviewScatter plots two features for every player of a tournament
// @Summary Tournament Scatter by Cluster
// @Tags Overview
// @Produce json
// @Param tournament query string true "Tournament name"
// @Param x query string true "Feature on the x axis"
// @Param y query string true "Feature on the y axis"
// @Success 200 {object} models.ScatterPlot
// @Failure 400 {object} map[string]string "Unknown selection"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /overview/scatter [get]
func (h *Handler) GetOverviewScatter(w http.ResponseWriter, r *http.Request) {
	tournament, ok := h.requiredQuery(w, r, "tournament")
	if !ok {
		return
	}
	x, ok := h.requiredQuery(w, r, "x")
	if !ok {
		return
	}
	y, ok := h.requiredQuery(w, r, "y")
	if !ok {
		return
	}

	plot, err := h.overview.GetTournamentScatter(r.Context(), tournament, x, y)
	if err != nil {
		h.serviceError(w, err, "Failed to get scatter", "tournament", tournament, "x", x, "y", y)
		return
	}
	h.jsonResponse(w, http.StatusOK, plot)
}

// GetOverviewHistogram returns the distribution of one feature in a cluster and tournament
// @Summary Feature Distribution
// @Tags Overview
// @Produce json
// @Param cluster query int true "Cluster ID"
// @Param tournament query string true "Tournament name"
// @Param feature query string true "Feature column"
// @Success 200 {object} models.Histogram
// @Failure 400 {object} map[string]string "Unknown selection"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /overview/histogram [get]
func (h *Handler) GetOverviewHistogram(w http.ResponseWriter, r *http.Request) {
	cluster, ok := h.requiredIntQuery(w, r, "cluster")
	if !ok {
		return
	}
	tournament, ok := h.requiredQuery(w, r, "tournament")
	if !ok {
		return
	}
	feature, ok := h.requiredQuery(w, r, "feature")
	if !ok {
		return
	}

	hist, err := h.overview.GetDistribution(r.Context(), cluster, tournament, feature)
	if err != nil {
		h.serviceError(w, err, "Failed to get distribution", "cluster", cluster, "feature", feature)
		return
	}
	h.jsonResponse(w, http.StatusOK, hist)
}
