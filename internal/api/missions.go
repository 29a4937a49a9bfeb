package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/redtail-aero/airscore/internal/scoring"
)

type MissionsHandler struct {
	scorer MissionScorer
	logger *slog.Logger
}

func NewMissionsHandler(scorer MissionScorer, logger *slog.Logger) *MissionsHandler {
	return &MissionsHandler{scorer: scorer, logger: logger}
}

// ScoreMissionResponse wraps a scoring result with the submission identity
// for this request/render cycle. Nothing is stored; the id only ties a
// render back to a log line.
type ScoreMissionResponse struct {
	SubmissionID string    `json:"submission_id"`
	ComputedAt   time.Time `json:"computed_at"`

	scoring.MissionResult
}

// Score handles POST /api/v1/missions/score.
func (h *MissionsHandler) Score(w http.ResponseWriter, r *http.Request) {
	var in scoring.MissionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		validationFailures.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.scorer.Score(in)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			validationFailures.Inc()
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"errors": verr.Fields,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	scoreComputations.Inc()
	missionScores.Observe(result.TotalScore)

	resp := ScoreMissionResponse{
		SubmissionID:  uuid.NewString(),
		ComputedAt:    time.Now().UTC(),
		MissionResult: result,
	}
	h.logger.Info("mission scored",
		"submission_id", resp.SubmissionID,
		"total", result.TotalScore,
		"segments", len(result.Breakdown),
	)
	writeJSON(w, http.StatusOK, resp)
}
