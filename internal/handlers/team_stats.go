package handlers

import (
	"net/http"
)

// ============================================================================
// TEAM ENDPOINTS
// ============================================================================

// GetTeam returns a team's records and summary statistics
// @Summary Team View
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} models.TeamView
// @Failure 400 {object} map[string]string "Unknown team"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /teams/{team} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")

	view, err := h.teamStats.GetTeamView(r.Context(), team)
	if err != nil {
		h.serviceError(w, err, "Failed to get team", "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetTeamPlayers lists a team's players
// @Summary Team Players
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Unknown team"
// @Router /teams/{team}/players [get]
func (h *Handler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")

	players, err := h.options.GetTeamPlayers(r.Context(), team)
	if err != nil {
		h.serviceError(w, err, "Failed to get team players", "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, players)
}

// GetTeamScatter plots two features for a team, one colour per player
// @Summary Team Scatter by Player
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Param x query string true "Feature on the x axis"
// @Param y query string true "Feature on the y axis"
// @Success 200 {object} models.ScatterPlot
// @Failure 400 {object} map[string]string "Unknown selection"
// @Router /teams/{team}/scatter [get]
func (h *Handler) GetTeamScatter(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")
	x, ok := h.requiredQuery(w, r, "x")
	if !ok {
		return
	}
	y, ok := h.requiredQuery(w, r, "y")
	if !ok {
		return
	}

	plot, err := h.teamStats.GetTeamScatter(r.Context(), team, x, y)
	if err != nil {
		h.serviceError(w, err, "Failed to get team scatter", "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, plot)
}

// GetPlayerSeries returns a player's metric across tournaments
// @Summary Player Metric Over Tournaments
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Param player path string true "Player name"
// @Param metric query string true "Numeric column"
// @Success 200 {object} models.LineSeries
// @Failure 400 {object} map[string]string "Unknown selection"
// @Router /teams/{team}/players/{player}/series [get]
func (h *Handler) GetPlayerSeries(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")
	player := pathParam(r, "player")
	metric, ok := h.requiredQuery(w, r, "metric")
	if !ok {
		return
	}

	series, err := h.teamStats.GetPlayerSeries(r.Context(), team, player, metric)
	if err != nil {
		h.serviceError(w, err, "Failed to get player series", "team", team, "player", player)
		return
	}
	h.jsonResponse(w, http.StatusOK, series)
}

// GetTeamSeries returns every player's metric across tournaments
// @Summary Team Metric Over Tournaments
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Param metric query string true "Numeric column"
// @Success 200 {array} models.LineSeries
// @Failure 400 {object} map[string]string "Unknown selection"
// @Router /teams/{team}/series [get]
func (h *Handler) GetTeamSeries(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")
	metric, ok := h.requiredQuery(w, r, "metric")
	if !ok {
		return
	}

	series, err := h.teamStats.GetTeamSeries(r.Context(), team, metric)
	if err != nil {
		h.serviceError(w, err, "Failed to get team series", "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, series)
}
