package handlers

import (
	"net/http"
)

// ============================================================================
// TOURNAMENT ENDPOINTS
// ============================================================================

// GetTournaments returns list of tournaments
// @Summary List Tournaments
// @Tags Tournaments
// @Produce json
// @Success 200 {array} models.TournamentSummary
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /tournaments [get]
func (h *Handler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	list, err := h.tournament.ListTournaments(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to get tournaments")
		return
	}
	h.jsonResponse(w, http.StatusOK, list)
}

// GetTournament returns details
// @Summary Get Tournament Details
// @Tags Tournaments
// @Produce json
// @Param name path string true "Tournament name"
// @Success 200 {object} models.TournamentSummary
// @Failure 400 {object} map[string]string "Unknown tournament"
// @Failure 503 {object} map[string]string "Dataset not found"
// @Router /tournaments/{name} [get]
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	t, err := h.tournament.GetTournament(r.Context(), name)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournament", "name", name)
		return
	}
	h.jsonResponse(w, http.StatusOK, t)
}
