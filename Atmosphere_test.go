package go_ballistics_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

func TestStandardAtmosphere(t *testing.T) {
	a := go_ballistics.CreateStandardAtmosphere()

	assertEqual(t, a.Density().Value(), unit.AirDensitySeaLevelValue, 1e-12, "Density")
	assertEqual(t, a.DensityFactor(), 1, 1e-12, "DensityFactor")
	if a.SpeedOfSound() != go_ballistics.CalculateSpeedOfSound(unit.StandardTemperature()) {
		t.Errorf("SpeedOfSound failed: %s", a.SpeedOfSound())
	}
	assertEqual(t, a.Mach(unit.CreateVelocity(a.SpeedOfSound().Value())), 1, 1e-12, "Mach")

	s := unit.CreateGyroscopicStability(1.45)
	if a.CorrectStability(s) != s {
		t.Errorf("standard atmosphere must not change the stability: %s", a.CorrectStability(s))
	}
	if a.String() != "Pressure:29.92inHg,Temperature:59.0°F,Humidity:0.00%" {
		t.Errorf("String failed: %s", a.String())
	}
}

func TestCreateAtmosphere(t *testing.T) {
	a, err := go_ballistics.CreateAtmosphere(unit.CreateTemperature(90), unit.CreatePressure(28), 50)
	if err != nil {
		t.Fatalf("CreateAtmosphere failed: %v", err)
	}
	assertEqual(t, a.Humidity(), 0.5, 1e-12, "Humidity in percents")

	a, err = go_ballistics.CreateAtmosphere(unit.CreateTemperature(90), unit.CreatePressure(28), 0.5)
	if err != nil {
		t.Fatalf("CreateAtmosphere failed: %v", err)
	}
	assertEqual(t, a.Humidity(), 0.5, 1e-12, "Humidity as coefficient")

	if a.DensityFactor() >= 1 {
		t.Errorf("hot, humid, low pressure air must be thinner: %f", a.DensityFactor())
	}
	s := unit.CreateGyroscopicStability(1.45)
	if a.CorrectStability(s).Value() <= s.Value() {
		t.Errorf("thin air must increase the stability: %s", a.CorrectStability(s))
	}

	if _, err = go_ballistics.CreateAtmosphere(unit.CreateTemperature(90), unit.CreatePressure(28), 150); err == nil {
		t.Errorf("humidity 150 must be rejected")
	}
	if _, err = go_ballistics.CreateAtmosphere(unit.CreateTemperature(90), unit.CreatePressure(28), -1); err == nil {
		t.Errorf("humidity -1 must be rejected")
	}
}

func TestColdAtmosphereIgnoresHumidity(t *testing.T) {
	dry, _ := go_ballistics.CreateAtmosphere(unit.CreateTemperature(-10), unit.StandardPressure(), 0)
	wet, _ := go_ballistics.CreateAtmosphere(unit.CreateTemperature(-10), unit.StandardPressure(), 100)
	if dry.Density() != wet.Density() {
		t.Errorf("humidity must not affect density below 0°F: %s/%s", dry.Density(), wet.Density())
	}
}

func TestColdAtmosphereScalesByPressure(t *testing.T) {
	for _, temperature := range []float64{-10, 0, 0.5} {
		standard, _ := go_ballistics.CreateAtmosphere(unit.CreateTemperature(temperature), unit.StandardPressure(), 0)
		low, _ := go_ballistics.CreateAtmosphere(unit.CreateTemperature(temperature), unit.CreatePressure(20), 0)
		assertEqual(t, low.Density().Value()/standard.Density().Value(), 20/29.92, 1e-12, "Density pressure ratio")
	}

	a, _ := go_ballistics.CreateAtmosphere(unit.CreateTemperature(-10), unit.CreatePressure(20), 0)
	assertEqual(t, a.Density().Value(), 0.0765*(518.67/449.67)*(20/29.92), 1e-12, "Density at -10°F, 20inHg")
	assertEqual(t, a.Density().Value(), 0.058983027, 1e-9, "Density at -10°F, 20inHg")
}
