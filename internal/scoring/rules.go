package scoring

import (
	"fmt"
	"math"
)

// SegmentMultipliers holds the scoring multiplier for each mission segment.
type SegmentMultipliers struct {
	ConventionalTakeoff float64
	PayloadRelease      float64
	PayloadDelivery     float64
	PayloadCapture      float64
	ReturnToBase        float64
}

// For returns the multiplier for a segment.
func (m SegmentMultipliers) For(seg Segment) float64 {
	switch seg {
	case SegmentConventionalTakeoff:
		return m.ConventionalTakeoff
	case SegmentPayloadRelease:
		return m.PayloadRelease
	case SegmentPayloadDelivery:
		return m.PayloadDelivery
	case SegmentPayloadCapture:
		return m.PayloadCapture
	case SegmentReturnToBase:
		return m.ReturnToBase
	}
	return 0
}

func (m SegmentMultipliers) asList() []float64 {
	return []float64{
		m.ConventionalTakeoff, m.PayloadRelease, m.PayloadDelivery,
		m.PayloadCapture, m.ReturnToBase,
	}
}

// BonusTier awards Bonus points when the mission time is strictly under
// MaxSeconds.
type BonusTier struct {
	MaxSeconds float64
	Bonus      float64
}

// RuleSet is the complete, competition-defined scoring rule book.
type RuleSet struct {
	Autonomous SegmentMultipliers
	Manual     SegmentMultipliers

	// BonusTiers must be ordered by ascending MaxSeconds; the first tier
	// whose threshold the mission time beats wins.
	BonusTiers []BonusTier

	MaxCombinedWeightLbs float64
	MaxMissionTimeSec    float64
}

// DefaultRules returns the current-season rule book.
func DefaultRules() RuleSet {
	return RuleSet{
		Autonomous: SegmentMultipliers{
			ConventionalTakeoff: 2,
			PayloadRelease:      3,
			PayloadDelivery:     8,
			PayloadCapture:      12,
			ReturnToBase:        3,
		},
		Manual: SegmentMultipliers{
			ConventionalTakeoff: 1,
			PayloadRelease:      1,
			PayloadDelivery:     1,
			PayloadCapture:      2,
			ReturnToBase:        1,
		},
		BonusTiers: []BonusTier{
			{MaxSeconds: 120, Bonus: 2},
			{MaxSeconds: 180, Bonus: 1},
			{MaxSeconds: 240, Bonus: 0},
		},
		MaxCombinedWeightLbs: 3.5,
		MaxMissionTimeSec:    240,
	}
}

// Multiplier returns the multiplier for a segment flown in the given mode.
func (r RuleSet) Multiplier(seg Segment, mode Mode) float64 {
	if mode == ModeAutonomous {
		return r.Autonomous.For(seg)
	}
	return r.Manual.For(seg)
}

// TimeBonus returns the bonus points for a mission time in seconds.
// Tier thresholds are exclusive: exactly 120s earns the under-3-minute
// bonus, not the under-2-minute one.
func (r RuleSet) TimeBonus(missionTimeSec float64) float64 {
	for _, tier := range r.BonusTiers {
		if missionTimeSec < tier.MaxSeconds {
			return tier.Bonus
		}
	}
	return 0
}

// Validate checks that the rule book is internally consistent.
func (r RuleSet) Validate() error {
	for i, seg := range AllSegments() {
		auto := r.Autonomous.asList()[i]
		manual := r.Manual.asList()[i]
		if auto < 0 || manual < 0 {
			return fmt.Errorf("segment %s: negative multiplier", seg)
		}
		if auto < manual {
			return fmt.Errorf("segment %s: autonomous multiplier %.1f below manual %.1f", seg, auto, manual)
		}
	}
	if r.MaxCombinedWeightLbs <= 0 || math.IsNaN(r.MaxCombinedWeightLbs) {
		return fmt.Errorf("max combined weight must be positive, got %f", r.MaxCombinedWeightLbs)
	}
	if r.MaxMissionTimeSec <= 0 || math.IsNaN(r.MaxMissionTimeSec) {
		return fmt.Errorf("max mission time must be positive, got %f", r.MaxMissionTimeSec)
	}
	var prev float64
	for i, tier := range r.BonusTiers {
		if tier.MaxSeconds <= prev {
			return fmt.Errorf("bonus tier %d: thresholds must be strictly ascending", i)
		}
		if tier.Bonus < 0 {
			return fmt.Errorf("bonus tier %d: negative bonus", i)
		}
		prev = tier.MaxSeconds
	}
	if n := len(r.BonusTiers); n > 0 && r.BonusTiers[n-1].MaxSeconds > r.MaxMissionTimeSec {
		return fmt.Errorf("last bonus tier exceeds max mission time %.0fs", r.MaxMissionTimeSec)
	}
	return nil
}
