package scoring

import (
	"testing"
)

func TestDefaultRulesValid(t *testing.T) {
	r := DefaultRules()
	if err := r.Validate(); err != nil {
		t.Errorf("default rules invalid: %v", err)
	}
}

func TestDefaultMultipliers(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		seg        Segment
		autonomous float64
		manual     float64
	}{
		{SegmentConventionalTakeoff, 2, 1},
		{SegmentPayloadRelease, 3, 1},
		{SegmentPayloadDelivery, 8, 1},
		{SegmentPayloadCapture, 12, 2},
		{SegmentReturnToBase, 3, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.seg), func(t *testing.T) {
			if got := r.Multiplier(tt.seg, ModeAutonomous); got != tt.autonomous {
				t.Errorf("autonomous: got %f, want %f", got, tt.autonomous)
			}
			if got := r.Multiplier(tt.seg, ModeManual); got != tt.manual {
				t.Errorf("manual: got %f, want %f", got, tt.manual)
			}
		})
	}
}

func TestTimeBonusTiers(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name string
		sec  float64
		want float64
	}{
		{"well under two minutes", 95, 2},
		{"just under two minutes", 119.9, 2},
		{"exactly two minutes drops a tier", 120, 1},
		{"under three minutes", 165, 1},
		{"exactly three minutes", 180, 0},
		{"under four minutes", 230, 0},
		{"exactly four minutes", 240, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.TimeBonus(tt.sec); got != tt.want {
				t.Errorf("TimeBonus(%v) = %f, want %f", tt.sec, got, tt.want)
			}
		})
	}
}

func TestRuleSetValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RuleSet)
	}{
		{"negative multiplier", func(r *RuleSet) { r.Manual.PayloadDelivery = -1 }},
		{"autonomous below manual", func(r *RuleSet) { r.Autonomous.PayloadCapture = 1 }},
		{"unordered bonus tiers", func(r *RuleSet) { r.BonusTiers[1].MaxSeconds = 60 }},
		{"negative bonus", func(r *RuleSet) { r.BonusTiers[0].Bonus = -2 }},
		{"zero weight limit", func(r *RuleSet) { r.MaxCombinedWeightLbs = 0 }},
		{"zero mission window", func(r *RuleSet) { r.MaxMissionTimeSec = 0 }},
		{"tier past mission window", func(r *RuleSet) { r.BonusTiers[2].MaxSeconds = 300 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseSegment(t *testing.T) {
	for _, seg := range AllSegments() {
		if _, err := ParseSegment(string(seg)); err != nil {
			t.Errorf("ParseSegment(%s): %v", seg, err)
		}
	}
	if _, err := ParseSegment("water_drop"); err == nil {
		t.Error("expected error for unknown segment")
	}
}

func TestParseMode(t *testing.T) {
	if _, err := ParseMode("autonomous"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseMode("Autonomous"); err == nil {
		t.Error("mode names are case-sensitive on the wire")
	}
}

func TestMultiplierUnknownSegmentIsZero(t *testing.T) {
	r := DefaultRules()
	if got := r.Multiplier(Segment("bogus"), ModeAutonomous); got != 0 {
		t.Errorf("expected 0 for unknown segment, got %f", got)
	}
}

func TestTimeBonusNoTiers(t *testing.T) {
	r := RuleSet{MaxMissionTimeSec: 240, MaxCombinedWeightLbs: 3.5}
	if got := r.TimeBonus(10); got != 0 {
		t.Errorf("expected 0 with no tiers, got %f", got)
	}
}
