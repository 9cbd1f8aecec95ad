package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

// PredictCluster classifies a new player's stats into a cluster
// @Summary Predict Player Cluster
// @Description Runs the pretrained model once on combat score, K:D and damage per round
// @Tags Prediction
// @Accept json
// @Produce json
// @Param body body models.PredictionRequest true "Player stats"
// @Success 200 {object} models.ClusterPrediction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Prediction failed"
// @Failure 503 {object} map[string]string "Model not found"
// @Router /predict [post]
func (h *Handler) PredictCluster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	var req models.PredictionRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid "+verrs[0].Field()+": out of range")
			return
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	pred, err := h.prediction.Predict(r.Context(), req)
	if err != nil {
		if errors.Is(err, inference.ErrShapeMismatch) || errors.Is(err, inference.ErrInvalidModel) {
			h.logger.Errorw("Prediction model rejected input", "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Prediction failed: "+err.Error())
			return
		}
		h.serviceError(w, err, "Prediction failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, pred)
}
