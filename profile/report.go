package profile

import (
	"fmt"
	"strings"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
	"github.com/gehtsoft-usa/go_ballistics/chrono"
)

//Report keeps the quantities derived for a profile. Quantities which
//could not be derived from the profile are nil.
type Report struct {
	Name         string
	Atmosphere   go_ballistics.Atmosphere
	SpeedOfSound unit.SpeedOfSound
	AirDensity   unit.AirDensity

	Chrono         *chrono.Summary
	MuzzleVelocity *unit.Velocity
	Mach           *float64

	KineticEnergy        *unit.KineticEnergy
	FormFactor           *unit.FormFactor
	BallisticCoefficient *unit.BallisticCoefficient

	//Stability is the factor at 2800 ft/s and standard conditions,
	//CorrectedStability is corrected for the muzzle velocity and the atmosphere.
	Stability          *unit.GyroscopicStability
	CorrectedStability *unit.GyroscopicStability
	AerodynamicJump    *unit.AerodynamicJump

	LagTime            *unit.LagTime
	WindDeflection     *unit.WindDeflection
	VelocityProjection *unit.VelocityProjection
	ClickValue         *unit.ApertureSightCalibration

	//Warnings are the validation failures tolerated outside strict mode.
	Warnings []error
}

func (r *Report) String() string {
	var sb strings.Builder
	line := func(label string, v fmt.Stringer) {
		fmt.Fprintf(&sb, "%-24s %s\n", label+":", v)
	}

	if r.Name != "" {
		fmt.Fprintf(&sb, "%s\n", r.Name)
	}
	line("Atmosphere", r.Atmosphere)
	line("Speed of sound", r.SpeedOfSound)
	line("Air density", r.AirDensity)
	if r.Chrono != nil {
		line("Chronograph", r.Chrono)
	}
	if r.MuzzleVelocity != nil {
		line("Muzzle velocity", r.MuzzleVelocity)
	}
	if r.Mach != nil {
		fmt.Fprintf(&sb, "%-24s %.3f\n", "Mach:", *r.Mach)
	}
	if r.KineticEnergy != nil {
		line("Kinetic energy", r.KineticEnergy)
	}
	if r.FormFactor != nil {
		line("Form factor", r.FormFactor)
	}
	if r.BallisticCoefficient != nil {
		line("Ballistic coefficient", r.BallisticCoefficient)
	}
	if r.Stability != nil {
		line("Stability (2800 ft/s)", r.Stability)
	}
	if r.CorrectedStability != nil {
		line("Stability (corrected)", r.CorrectedStability)
	}
	if r.AerodynamicJump != nil {
		line("Aerodynamic jump", r.AerodynamicJump)
	}
	if r.LagTime != nil {
		line("Lag time", r.LagTime)
	}
	if r.WindDeflection != nil {
		line("Wind deflection", r.WindDeflection)
	}
	if r.VelocityProjection != nil {
		line("Projected velocity", r.VelocityProjection)
	}
	if r.ClickValue != nil {
		line("Sight click value", r.ClickValue)
	}
	return sb.String()
}
