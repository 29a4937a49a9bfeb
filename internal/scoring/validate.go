package scoring

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field so the form can surface all
// problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid mission input: " + strings.Join(parts, "; ")
}

// ValidateInput checks a mission input against the rule book. A nil return
// means the input is scoreable.
func ValidateInput(rules RuleSet, in MissionInput) *ValidationError {
	var fields []FieldError

	if msg := checkWeight(in.AircraftWeightLbs); msg != "" {
		fields = append(fields, FieldError{Field: "aircraft_weight_lbs", Message: msg})
	}
	if msg := checkWeight(in.PayloadWeightLbs); msg != "" {
		fields = append(fields, FieldError{Field: "payload_weight_lbs", Message: msg})
	}
	if len(fields) == 0 && in.AircraftWeightLbs+in.PayloadWeightLbs > rules.MaxCombinedWeightLbs {
		fields = append(fields, FieldError{
			Field:   "payload_weight_lbs",
			Message: fmt.Sprintf("aircraft plus payload exceeds %.1f lbs limit", rules.MaxCombinedWeightLbs),
		})
	}

	switch {
	case math.IsNaN(in.MissionTimeSec) || math.IsInf(in.MissionTimeSec, 0):
		fields = append(fields, FieldError{Field: "mission_time_sec", Message: "must be a finite number"})
	case in.MissionTimeSec < 0:
		fields = append(fields, FieldError{Field: "mission_time_sec", Message: "must be non-negative"})
	case in.MissionTimeSec > rules.MaxMissionTimeSec:
		fields = append(fields, FieldError{
			Field:   "mission_time_sec",
			Message: fmt.Sprintf("exceeds %.0fs mission window", rules.MaxMissionTimeSec),
		})
	}

	seen := make(map[Segment]bool, len(in.Segments))
	for i, sel := range in.Segments {
		field := fmt.Sprintf("segments[%d]", i)
		if _, err := ParseSegment(string(sel.Segment)); err != nil {
			fields = append(fields, FieldError{Field: field + ".segment", Message: err.Error()})
			continue
		}
		if _, err := ParseMode(string(sel.Mode)); err != nil {
			fields = append(fields, FieldError{Field: field + ".mode", Message: err.Error()})
		}
		if seen[sel.Segment] {
			fields = append(fields, FieldError{
				Field:   field + ".segment",
				Message: fmt.Sprintf("segment %s selected more than once", sel.Segment),
			})
		}
		seen[sel.Segment] = true
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func checkWeight(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "must be a finite number"
	case v < 0:
		return "must be non-negative"
	}
	return ""
}
