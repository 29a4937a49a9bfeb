package propeller

import (
	"fmt"
	"math"
)

// Sea-level standard atmosphere, kg/m^3.
const airDensity = 1.225

// OperatingPoint is the condition a propeller is analyzed at.
type OperatingPoint struct {
	RPM        float64 `json:"rpm"`
	VelocityMS float64 `json:"velocity_ms"`
}

// SectionResult captures the blade element solution at one radial station.
type SectionResult struct {
	RadiusM        float64 `json:"radius_m"`
	RadiusFraction float64 `json:"radius_fraction"`
	PhiDeg         float64 `json:"phi_deg"`
	AlphaDeg       float64 `json:"alpha_deg"`
	Cl             float64 `json:"cl"`
	Cd             float64 `json:"cd"`
	VelocityMS     float64 `json:"velocity_ms"`
	LiftN          float64 `json:"lift_n"`
	DragN          float64 `json:"drag_n"`
	ThrustN        float64 `json:"thrust_n"`
	TorqueNM       float64 `json:"torque_nm"`
}

// Analysis is the full blade element solution for one operating point.
// Totals are per propeller: blade count times the single-blade sums.
type Analysis struct {
	ThrustN  float64         `json:"thrust_n"`
	TorqueNM float64         `json:"torque_nm"`
	Sections []SectionResult `json:"sections"`
}

// Analyze runs blade element theory over every section of the propeller.
// For each station the velocity triangle gives the inflow angle
// phi = atan2(V, omega*r) and the effective angle of attack
// alpha = twist - phi; the airfoil polars supply cl and cd, and the
// resulting lift and drag are rotated into thrust and torque.
func Analyze(prop Propeller, op OperatingPoint) (Analysis, error) {
	if err := prop.Validate(); err != nil {
		return Analysis{}, fmt.Errorf("invalid propeller: %w", err)
	}
	if op.RPM < 0 || math.IsNaN(op.RPM) || math.IsInf(op.RPM, 0) {
		return Analysis{}, fmt.Errorf("rpm must be a non-negative finite number, got %f", op.RPM)
	}
	if op.VelocityMS < 0 || math.IsNaN(op.VelocityMS) || math.IsInf(op.VelocityMS, 0) {
		return Analysis{}, fmt.Errorf("velocity must be a non-negative finite number, got %f", op.VelocityMS)
	}

	tipRadius := prop.DiameterM / 2
	sectionWidth := tipRadius / float64(len(prop.Sections))
	omega := op.RPM * 2 * math.Pi / 60

	analysis := Analysis{Sections: make([]SectionResult, 0, len(prop.Sections))}
	var thrust, torque float64

	for _, sec := range prop.Sections {
		tangential := omega * sec.RadiusM
		resultant := math.Sqrt(tangential*tangential + op.VelocityMS*op.VelocityMS)
		phi := math.Atan2(op.VelocityMS, tangential)
		alphaDeg := sec.TwistDeg - phi*180/math.Pi

		cl := sec.Lift.At(alphaDeg)
		cd := sec.Drag.At(alphaDeg)

		q := 0.5 * airDensity * resultant * resultant
		lift := cl * q * sec.ChordM * sectionWidth
		drag := cd * q * sec.ChordM * sectionWidth

		dT := lift*math.Cos(phi) - drag*math.Sin(phi)
		dQ := (lift*math.Sin(phi) + drag*math.Cos(phi)) * sec.RadiusM

		analysis.Sections = append(analysis.Sections, SectionResult{
			RadiusM:        sec.RadiusM,
			RadiusFraction: sec.RadiusM / tipRadius,
			PhiDeg:         phi * 180 / math.Pi,
			AlphaDeg:       alphaDeg,
			Cl:             cl,
			Cd:             cd,
			VelocityMS:     resultant,
			LiftN:          lift,
			DragN:          drag,
			ThrustN:        dT,
			TorqueNM:       dQ,
		})
		thrust += dT
		torque += dQ
	}

	analysis.ThrustN = thrust * float64(prop.Blades)
	analysis.TorqueNM = torque * float64(prop.Blades)
	return analysis, nil
}
