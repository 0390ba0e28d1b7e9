package profile

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
	"github.com/gehtsoft-usa/go_ballistics/chrono"
	"github.com/gehtsoft-usa/go_ballistics/validate"
)

//Solver derives all quantities available for a profile.
type Solver struct {
	logger *slog.Logger

	//Strict makes Solve fail on inputs rejected by the validate package
	//instead of logging them and computing non-finite results.
	Strict bool
}

//NewSolver creates a solver logging to logger, slog.Default() if nil.
func NewSolver(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{logger: logger}
}

type solveRun struct {
	s      *Solver
	logger *slog.Logger
	errs   []error
}

//check records a validation failure; it returns false only in strict mode.
func (r *solveRun) check(quantity string, err error) bool {
	if err == nil {
		return true
	}
	r.errs = append(r.errs, fmt.Errorf("%s: %w", quantity, err))
	if r.s.Strict {
		return false
	}
	r.logger.Warn("Invalid input", "quantity", quantity, "err", err)
	return true
}

func (r *solveRun) computed(quantity string, value float64) {
	if err := validate.Result(quantity, value); err != nil {
		r.logger.Warn("Non-finite result", "quantity", quantity, "value", value)
		return
	}
	r.logger.Debug("Computed", "quantity", quantity, "value", value)
}

//Solve computes the quantities of the profile in dependency order.
//
//In strict mode the first group of invalid inputs stops the computation and
//the joined validation errors are returned. Otherwise invalid inputs are
//logged and the formulas produce ±Inf or NaN.
func (s *Solver) Solve(p *Profile) (*Report, error) {
	r := &solveRun{s: s, logger: s.logger.With("profile", p.Name)}
	rep := &Report{Name: p.Name}

	if !r.check("atmosphere", validate.Temperature("temperature", unit.CreateTemperature(p.Atmosphere.Temperature))) {
		return nil, errors.Join(r.errs...)
	}
	atmosphere, err := go_ballistics.CreateAtmosphere(
		unit.CreateTemperature(p.Atmosphere.Temperature),
		unit.CreatePressure(p.Atmosphere.Pressure),
		p.Atmosphere.Humidity)
	if err != nil {
		return nil, fmt.Errorf("atmosphere: %w", err)
	}
	rep.Atmosphere = atmosphere
	rep.SpeedOfSound = atmosphere.SpeedOfSound()
	r.computed("speed_of_sound", rep.SpeedOfSound.Value())
	rep.AirDensity = atmosphere.Density()
	r.computed("air_density", rep.AirDensity.Value())

	if len(p.Shot.Chrono) > 0 {
		summary, err := chrono.Summarize(p.velocities())
		if err != nil {
			return nil, err
		}
		rep.Chrono = &summary
		rep.MuzzleVelocity = ptr(summary.Mean())
		r.logger.Debug("Chronograph", "summary", summary.String())
	} else if p.Shot.MuzzleVelocity != 0 {
		rep.MuzzleVelocity = ptr(unit.CreateVelocity(p.Shot.MuzzleVelocity))
	}

	if rep.MuzzleVelocity != nil {
		mach := atmosphere.Mach(*rep.MuzzleVelocity)
		rep.Mach = &mach
		r.computed("mach", mach)
	}

	b := p.Bullet
	mass := unit.CreateBulletMass(b.Mass)
	diameter := unit.CreateBulletDiameter(b.Diameter)
	length := unit.CreateBulletLength(b.Length)

	if b.Mass != 0 && rep.MuzzleVelocity != nil {
		e := go_ballistics.CalculateKineticEnergy(mass, *rep.MuzzleVelocity)
		rep.KineticEnergy = &e
		r.computed("kinetic_energy", e.Value())
	}

	if b.DragCoefficient != 0 && rep.Mach != nil {
		name := b.DragTable
		if name == "" {
			name = DefaultDragTable
		}
		table, err := go_ballistics.ParseDragTable(name)
		if err != nil {
			return nil, fmt.Errorf("form factor: %w", err)
		}
		cmp := go_ballistics.DragComparison{
			DragCoefficient:         unit.CreateDragCoefficient(b.DragCoefficient),
			StandardDragCoefficient: go_ballistics.StandardDragCoefficient(table, *rep.Mach),
		}
		if !r.check("form_factor", validate.FormFactor(cmp)) {
			return nil, errors.Join(r.errs...)
		}
		ff := go_ballistics.CalculateFormFactor(cmp)
		rep.FormFactor = &ff
		r.computed("form_factor", ff.Value())
	} else if b.FormFactor != 0 {
		rep.FormFactor = ptr(unit.CreateFormFactor(b.FormFactor))
	}

	if b.Mass != 0 && b.Diameter != 0 && rep.FormFactor != nil {
		params := go_ballistics.BallisticCoefficientParams{Mass: mass, Diameter: diameter, FormFactor: *rep.FormFactor}
		if !r.check("ballistic_coefficient", validate.BallisticCoefficient(params)) {
			return nil, errors.Join(r.errs...)
		}
		bc := go_ballistics.CalculateBallisticCoefficient(params)
		rep.BallisticCoefficient = &bc
		r.computed("ballistic_coefficient", bc.Value())
	}

	if b.Mass != 0 && b.Diameter != 0 && b.Length != 0 && p.Rifle.Twist != 0 {
		params := go_ballistics.StabilityParams{
			Mass:     mass,
			Twist:    unit.CreateRiflingTwist(p.Rifle.Twist),
			Diameter: diameter,
			Length:   length,
		}
		if !r.check("stability", validate.Stability(params)) {
			return nil, errors.Join(r.errs...)
		}
		st := go_ballistics.CalculateGyroscopicStability(params)
		rep.Stability = &st
		r.computed("stability", st.Value())

		corrected := st
		if rep.MuzzleVelocity != nil {
			if !r.check("velocity_correction", validate.VelocityCorrection(*rep.MuzzleVelocity)) {
				return nil, errors.Join(r.errs...)
			}
			corrected = go_ballistics.CorrectStabilityForVelocity(*rep.MuzzleVelocity, corrected)
		}
		correction := go_ballistics.AtmosphericCorrection{
			Temperature: atmosphere.Temperature(),
			Pressure:    atmosphere.Pressure(),
			Stability:   corrected,
		}
		if !r.check("atmospheric_correction", validate.AtmosphericCorrection(correction)) {
			return nil, errors.Join(r.errs...)
		}
		corrected = go_ballistics.CorrectStabilityForAtmosphere(correction)
		rep.CorrectedStability = &corrected
		r.computed("corrected_stability", corrected.Value())

		jump := go_ballistics.CalculateAerodynamicJump(corrected, length)
		rep.AerodynamicJump = &jump
		r.computed("aerodynamic_jump", jump.Value())
	}

	if p.Shot.TimeOfFlight != 0 && p.Shot.Distance != 0 && rep.MuzzleVelocity != nil {
		params := go_ballistics.LagTimeParams{
			ActualTimeOfFlight: unit.CreateTimeOfFlight(p.Shot.TimeOfFlight),
			Distance:           unit.CreateDistance(p.Shot.Distance),
			MuzzleVelocity:     *rep.MuzzleVelocity,
		}
		if !r.check("lag_time", validate.LagTime(params)) {
			return nil, errors.Join(r.errs...)
		}
		lag := go_ballistics.CalculateLagTime(params)
		rep.LagTime = &lag
		r.computed("lag_time", lag.Value())

		if p.Shot.Crosswind != 0 {
			wind := go_ballistics.CreateWind(unit.CreateWindSpeed(p.Shot.Crosswind))
			deflection := wind.Deflection(lag)
			rep.WindDeflection = &deflection
			r.computed("wind_deflection", deflection.Value())
		}
	}

	if p.Comparison.Mass != 0 && b.Mass != 0 && rep.MuzzleVelocity != nil {
		params := go_ballistics.VelocityProjectionParams{
			KnownMass:     mass,
			ProjectedMass: unit.CreateBulletMass(p.Comparison.Mass),
			KnownVelocity: *rep.MuzzleVelocity,
		}
		if !r.check("velocity_projection", validate.VelocityProjection(params)) {
			return nil, errors.Join(r.errs...)
		}
		v := go_ballistics.CalculateVelocityProjection(params)
		rep.VelocityProjection = &v
		r.computed("velocity_projection", v.Value())
	}

	if p.Rifle.SightRadius != 0 || p.Rifle.TwentyClickMovement != 0 {
		sight := go_ballistics.ApertureSight{
			TwentyClickMovement: unit.CreateSightCalibration(p.Rifle.TwentyClickMovement),
			SightRadius:         unit.CreateSightCalibration(p.Rifle.SightRadius),
		}
		if !r.check("aperture_sight", validate.ApertureSight(sight)) {
			return nil, errors.Join(r.errs...)
		}
		click := go_ballistics.CalculateApertureSightCalibration(sight)
		rep.ClickValue = &click
		r.computed("aperture_sight_calibration", click.Value())
	}

	rep.Warnings = r.errs
	return rep, nil
}

func ptr[T any](v T) *T {
	return &v
}
