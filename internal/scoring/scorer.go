package scoring

import (
	"log/slog"
)

// SegmentSelection pairs a flown segment with its pilot mode.
type SegmentSelection struct {
	Segment Segment `json:"segment"`
	Mode    Mode    `json:"mode"`
}

// MissionInput is one mission attempt as entered on the form. It lives for
// a single request and is discarded after scoring.
type MissionInput struct {
	AircraftWeightLbs float64            `json:"aircraft_weight_lbs"`
	PayloadWeightLbs  float64            `json:"payload_weight_lbs"`
	MissionTimeSec    float64            `json:"mission_time_sec"`
	Segments          []SegmentSelection `json:"segments"`
}

// SegmentScore is one segment's contribution to the mission total.
type SegmentScore struct {
	Segment    Segment `json:"segment"`
	Mode       Mode    `json:"mode"`
	Multiplier float64 `json:"multiplier"`
	Points     float64 `json:"points"`
}

// MissionResult is the complete scoring output for one mission attempt.
// TotalScore always equals the sum of Breakdown points plus TimeBonus.
type MissionResult struct {
	TotalScore float64        `json:"total_score"`
	TimeBonus  float64        `json:"time_bonus"`
	Breakdown  []SegmentScore `json:"breakdown"`

	AircraftWeightLbs float64 `json:"aircraft_weight_lbs"`
	PayloadWeightLbs  float64 `json:"payload_weight_lbs"`
	CombinedWeightLbs float64 `json:"combined_weight_lbs"`
}

// Scorer computes mission scores under a fixed rule book.
type Scorer struct {
	rules  RuleSet
	logger *slog.Logger
}

// NewScorer creates a Scorer with the given rules.
func NewScorer(rules RuleSet, logger *slog.Logger) *Scorer {
	return &Scorer{rules: rules, logger: logger}
}

// Rules returns the active rule book.
func (s *Scorer) Rules() RuleSet {
	return s.rules
}

// SegmentPoints computes one segment's score:
//
//	multiplier(segment, mode) * payload_weight + 1
//
// The +1 is the completion point awarded regardless of payload.
func (s *Scorer) SegmentPoints(seg Segment, mode Mode, payloadLbs float64) float64 {
	return s.rules.Multiplier(seg, mode)*payloadLbs + 1
}

// Score validates the input and computes the mission total with its
// per-segment breakdown. It is pure: identical inputs yield identical
// results, and valid input never fails.
func (s *Scorer) Score(in MissionInput) (MissionResult, error) {
	if verr := ValidateInput(s.rules, in); verr != nil {
		return MissionResult{}, verr
	}

	result := MissionResult{
		TimeBonus:         s.rules.TimeBonus(in.MissionTimeSec),
		Breakdown:         make([]SegmentScore, 0, len(in.Segments)),
		AircraftWeightLbs: in.AircraftWeightLbs,
		PayloadWeightLbs:  in.PayloadWeightLbs,
		CombinedWeightLbs: in.AircraftWeightLbs + in.PayloadWeightLbs,
	}

	total := result.TimeBonus
	for _, sel := range in.Segments {
		points := s.SegmentPoints(sel.Segment, sel.Mode, in.PayloadWeightLbs)
		result.Breakdown = append(result.Breakdown, SegmentScore{
			Segment:    sel.Segment,
			Mode:       sel.Mode,
			Multiplier: s.rules.Multiplier(sel.Segment, sel.Mode),
			Points:     points,
		})
		total += points
	}
	result.TotalScore = total

	s.logger.Debug("mission scored",
		"total", result.TotalScore,
		"segments", len(result.Breakdown),
		"time_bonus", result.TimeBonus,
	)
	return result, nil
}
