package scoring

import "fmt"

// Segment identifies one phase of the competition flight mission.
type Segment string

const (
	SegmentConventionalTakeoff Segment = "conventional_takeoff"
	SegmentPayloadRelease      Segment = "payload_release"
	SegmentPayloadDelivery     Segment = "payload_delivery"
	SegmentPayloadCapture      Segment = "payload_capture"
	SegmentReturnToBase        Segment = "return_to_base"
)

// AllSegments returns the mission segments in flight order.
func AllSegments() []Segment {
	return []Segment{
		SegmentConventionalTakeoff,
		SegmentPayloadRelease,
		SegmentPayloadDelivery,
		SegmentPayloadCapture,
		SegmentReturnToBase,
	}
}

// ParseSegment validates a wire-format segment name.
func ParseSegment(s string) (Segment, error) {
	seg := Segment(s)
	for _, known := range AllSegments() {
		if seg == known {
			return seg, nil
		}
	}
	return "", fmt.Errorf("unknown segment %q", s)
}

// Mode is the pilot configuration for a segment. Autonomous segments earn
// higher multipliers.
type Mode string

const (
	ModeManual     Mode = "manual"
	ModeAutonomous Mode = "autonomous"
)

// ParseMode validates a wire-format mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeManual:
		return ModeManual, nil
	case ModeAutonomous:
		return ModeAutonomous, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}
