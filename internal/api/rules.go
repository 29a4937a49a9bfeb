package api

import (
	"net/http"

	"github.com/redtail-aero/airscore/internal/scoring"
)

type RulesHandler struct {
	rules scoring.RuleSet
}

func NewRulesHandler(rules scoring.RuleSet) *RulesHandler {
	return &RulesHandler{rules: rules}
}

type rulesResponse struct {
	Segments             []segmentInfo `json:"segments"`
	BonusTiers           []bonusTier   `json:"bonus_tiers"`
	MaxCombinedWeightLbs float64       `json:"max_combined_weight_lbs"`
	MaxMissionTimeSec    float64       `json:"max_mission_time_sec"`
}

type segmentInfo struct {
	Segment              scoring.Segment `json:"segment"`
	ManualMultiplier     float64         `json:"manual_multiplier"`
	AutonomousMultiplier float64         `json:"autonomous_multiplier"`
}

type bonusTier struct {
	MaxSeconds float64 `json:"max_seconds"`
	Bonus      float64 `json:"bonus"`
}

func (h *RulesHandler) segmentCatalog() []segmentInfo {
	segments := make([]segmentInfo, 0, len(scoring.AllSegments()))
	for _, seg := range scoring.AllSegments() {
		segments = append(segments, segmentInfo{
			Segment:              seg,
			ManualMultiplier:     h.rules.Multiplier(seg, scoring.ModeManual),
			AutonomousMultiplier: h.rules.Multiplier(seg, scoring.ModeAutonomous),
		})
	}
	return segments
}

// Rules handles GET /api/v1/rules. The browser form seeds its sliders and
// segment list from this.
func (h *RulesHandler) Rules(w http.ResponseWriter, r *http.Request) {
	tiers := make([]bonusTier, 0, len(h.rules.BonusTiers))
	for _, t := range h.rules.BonusTiers {
		tiers = append(tiers, bonusTier{MaxSeconds: t.MaxSeconds, Bonus: t.Bonus})
	}
	writeJSON(w, http.StatusOK, rulesResponse{
		Segments:             h.segmentCatalog(),
		BonusTiers:           tiers,
		MaxCombinedWeightLbs: h.rules.MaxCombinedWeightLbs,
		MaxMissionTimeSec:    h.rules.MaxMissionTimeSec,
	})
}

// Segments handles GET /api/v1/segments.
func (h *RulesHandler) Segments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"segments": h.segmentCatalog()})
}
