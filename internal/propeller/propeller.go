// Package propeller models fixed-pitch propellers and analyzes them with
// blade element theory.
package propeller

import (
	"fmt"
	"sort"
)

// Polar is an airfoil coefficient curve sampled against angle of attack in
// degrees. Lookups interpolate linearly and clamp at the sampled ends.
type Polar struct {
	AlphaDeg    []float64 `json:"alpha_deg"`
	Coefficient []float64 `json:"coefficient"`
}

// Validate checks that the curve is usable for interpolation.
func (p Polar) Validate() error {
	if len(p.AlphaDeg) < 2 {
		return fmt.Errorf("polar needs at least 2 samples, got %d", len(p.AlphaDeg))
	}
	if len(p.AlphaDeg) != len(p.Coefficient) {
		return fmt.Errorf("polar has %d alpha samples but %d coefficients", len(p.AlphaDeg), len(p.Coefficient))
	}
	if !sort.Float64sAreSorted(p.AlphaDeg) {
		return fmt.Errorf("polar alpha samples must be ascending")
	}
	return nil
}

// At returns the interpolated coefficient at the given angle of attack.
func (p Polar) At(alphaDeg float64) float64 {
	n := len(p.AlphaDeg)
	if n == 0 {
		return 0
	}
	if alphaDeg <= p.AlphaDeg[0] {
		return p.Coefficient[0]
	}
	if alphaDeg >= p.AlphaDeg[n-1] {
		return p.Coefficient[n-1]
	}
	i := sort.SearchFloat64s(p.AlphaDeg, alphaDeg)
	x0, x1 := p.AlphaDeg[i-1], p.AlphaDeg[i]
	y0, y1 := p.Coefficient[i-1], p.Coefficient[i]
	return y0 + (y1-y0)*(alphaDeg-x0)/(x1-x0)
}

// BladeSection is one radial station of a blade.
type BladeSection struct {
	RadiusM  float64 `json:"radius_m"`
	ChordM   float64 `json:"chord_m"`
	TwistDeg float64 `json:"twist_deg"`
	Lift     Polar   `json:"lift"`
	Drag     Polar   `json:"drag"`
}

// Propeller is a complete propeller geometry.
type Propeller struct {
	Blades     int            `json:"blades"`
	DiameterM  float64        `json:"diameter_m"`
	HubRadiusM float64        `json:"hub_radius_m"`
	Sections   []BladeSection `json:"sections"`
}

// Validate checks the geometry before analysis.
func (p Propeller) Validate() error {
	if p.Blades < 1 {
		return fmt.Errorf("propeller needs at least 1 blade, got %d", p.Blades)
	}
	if p.DiameterM <= 0 {
		return fmt.Errorf("diameter must be positive, got %f", p.DiameterM)
	}
	tip := p.DiameterM / 2
	if p.HubRadiusM < 0 || p.HubRadiusM >= tip {
		return fmt.Errorf("hub radius %.4f must be within [0, %.4f)", p.HubRadiusM, tip)
	}
	if len(p.Sections) == 0 {
		return fmt.Errorf("propeller needs at least 1 section")
	}
	for i, sec := range p.Sections {
		if sec.RadiusM < p.HubRadiusM || sec.RadiusM > tip {
			return fmt.Errorf("section %d: radius %.4f outside blade span [%.4f, %.4f]", i, sec.RadiusM, p.HubRadiusM, tip)
		}
		if sec.ChordM <= 0 {
			return fmt.Errorf("section %d: chord must be positive, got %f", i, sec.ChordM)
		}
		if err := sec.Lift.Validate(); err != nil {
			return fmt.Errorf("section %d lift: %w", i, err)
		}
		if err := sec.Drag.Validate(); err != nil {
			return fmt.Errorf("section %d drag: %w", i, err)
		}
	}
	return nil
}

// NewTapered builds a propeller whose chord and twist vary linearly from
// root to tip, sharing one airfoil polar pair across all sections.
func NewTapered(blades int, diameterM, hubRadiusM float64, sections int,
	chordRootM, chordTipM, twistRootDeg, twistTipDeg float64,
	lift, drag Polar) (Propeller, error) {

	if sections < 1 {
		return Propeller{}, fmt.Errorf("tapered propeller needs at least 1 section, got %d", sections)
	}

	radii := linspace(hubRadiusM, diameterM/2, sections)
	chords := linspace(chordRootM, chordTipM, sections)
	twists := linspace(twistRootDeg, twistTipDeg, sections)

	prop := Propeller{
		Blades:     blades,
		DiameterM:  diameterM,
		HubRadiusM: hubRadiusM,
		Sections:   make([]BladeSection, sections),
	}
	for i := range prop.Sections {
		prop.Sections[i] = BladeSection{
			RadiusM:  radii[i],
			ChordM:   chords[i],
			TwistDeg: twists[i],
			Lift:     lift,
			Drag:     drag,
		}
	}
	if err := prop.Validate(); err != nil {
		return Propeller{}, err
	}
	return prop, nil
}

// linspace returns n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
