package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/redtail-aero/airscore/internal/propeller"
)

type PropellersHandler struct {
	logger *slog.Logger
}

func NewPropellersHandler(logger *slog.Logger) *PropellersHandler {
	return &PropellersHandler{logger: logger}
}

// AnalyzePropellerRequest carries either explicit blade sections or the
// parameters of a linearly tapered blade, plus the operating point.
type AnalyzePropellerRequest struct {
	Blades     int     `json:"blades"`
	DiameterM  float64 `json:"diameter_m"`
	HubRadiusM float64 `json:"hub_radius_m"`
	RPM        float64 `json:"rpm"`
	VelocityMS float64 `json:"velocity_ms"`

	Sections []propeller.BladeSection `json:"sections,omitempty"`
	Tapered  *TaperedSpec             `json:"tapered,omitempty"`
}

type TaperedSpec struct {
	SectionCount int             `json:"section_count"`
	ChordRootM   float64         `json:"chord_root_m"`
	ChordTipM    float64         `json:"chord_tip_m"`
	TwistRootDeg float64         `json:"twist_root_deg"`
	TwistTipDeg  float64         `json:"twist_tip_deg"`
	Lift         propeller.Polar `json:"lift"`
	Drag         propeller.Polar `json:"drag"`
}

// Analyze handles POST /api/v1/propellers/analyze.
func (h *PropellersHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzePropellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var (
		prop propeller.Propeller
		err  error
	)
	switch {
	case len(req.Sections) > 0 && req.Tapered != nil:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "provide either sections or tapered, not both"})
		return
	case len(req.Sections) > 0:
		prop = propeller.Propeller{
			Blades:     req.Blades,
			DiameterM:  req.DiameterM,
			HubRadiusM: req.HubRadiusM,
			Sections:   req.Sections,
		}
	case req.Tapered != nil:
		prop, err = propeller.NewTapered(req.Blades, req.DiameterM, req.HubRadiusM,
			req.Tapered.SectionCount,
			req.Tapered.ChordRootM, req.Tapered.ChordTipM,
			req.Tapered.TwistRootDeg, req.Tapered.TwistTipDeg,
			req.Tapered.Lift, req.Tapered.Drag)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "sections or tapered required"})
		return
	}

	analysis, err := propeller.Analyze(prop, propeller.OperatingPoint{
		RPM:        req.RPM,
		VelocityMS: req.VelocityMS,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	propellerAnalyses.Inc()
	h.logger.Info("propeller analyzed",
		"blades", prop.Blades,
		"sections", len(prop.Sections),
		"rpm", req.RPM,
		"thrust_n", analysis.ThrustN,
	)
	writeJSON(w, http.StatusOK, analysis)
}
