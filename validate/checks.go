package validate

import (
	"errors"
	"math"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

const absoluteZeroF = -459.67

//Finite fails if v is NaN or infinite.
func Finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Value: v, Err: ErrNotFinite}
	}
	return nil
}

//Positive fails if v is not a finite number greater than zero.
func Positive(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &FieldError{Field: field, Value: v, Err: ErrNotPositive}
	}
	return nil
}

//Temperature fails if t is not finite or is below the absolute zero.
func Temperature(field string, t unit.Temperature) error {
	if err := Finite(field, t.Value()); err != nil {
		return err
	}
	if t.Value() < absoluteZeroF {
		return &FieldError{Field: field, Value: t.Value(), Err: ErrBelowAbsoluteZero}
	}
	return nil
}

//Result fails if a computed value is NaN or infinite.
func Result(field string, v float64) error {
	return Finite(field, v)
}

//Stability checks the inputs of Miller's stability formula.
func Stability(p go_ballistics.StabilityParams) error {
	return errors.Join(
		Positive("mass", p.Mass.Value()),
		Positive("twist", p.Twist.Value()),
		Positive("diameter", p.Diameter.Value()),
		Positive("length", p.Length.Value()),
	)
}

//VelocityCorrection checks the muzzle velocity used to correct the stability factor.
func VelocityCorrection(muzzleVelocity unit.Velocity) error {
	return Positive("muzzle_velocity", muzzleVelocity.Value())
}

//AtmosphericCorrection checks the inputs of the atmospheric stability correction.
func AtmosphericCorrection(p go_ballistics.AtmosphericCorrection) error {
	return errors.Join(
		Temperature("temperature", p.Temperature),
		Positive("pressure", p.Pressure.Value()),
		Finite("stability", p.Stability.Value()),
	)
}

//BallisticCoefficient checks the inputs of the ballistic coefficient formula.
func BallisticCoefficient(p go_ballistics.BallisticCoefficientParams) error {
	return errors.Join(
		Positive("mass", p.Mass.Value()),
		Positive("diameter", p.Diameter.Value()),
		Positive("form_factor", p.FormFactor.Value()),
	)
}

//FormFactor checks the drag coefficients compared by the form factor formula.
func FormFactor(p go_ballistics.DragComparison) error {
	return errors.Join(
		Positive("drag_coefficient", p.DragCoefficient.Value()),
		Positive("standard_drag_coefficient", p.StandardDragCoefficient.Value()),
	)
}

//LagTime checks the inputs of the lag time formula.
func LagTime(p go_ballistics.LagTimeParams) error {
	return errors.Join(
		Positive("time_of_flight", p.ActualTimeOfFlight.Value()),
		Positive("distance", p.Distance.Value()),
		Positive("muzzle_velocity", p.MuzzleVelocity.Value()),
	)
}

//VelocityProjection checks the inputs of the velocity projection formula.
func VelocityProjection(p go_ballistics.VelocityProjectionParams) error {
	return errors.Join(
		Positive("known_mass", p.KnownMass.Value()),
		Positive("projected_mass", p.ProjectedMass.Value()),
		Finite("known_velocity", p.KnownVelocity.Value()),
	)
}

//ApertureSight checks the sight measurements.
func ApertureSight(p go_ballistics.ApertureSight) error {
	return errors.Join(
		Finite("twenty_click_movement", p.TwentyClickMovement.Value()),
		Positive("sight_radius", p.SightRadius.Value()),
	)
}

//SpeedOfSound checks the temperature the speed of sound is calculated for.
func SpeedOfSound(t unit.Temperature) error {
	return Temperature("temperature", t)
}
