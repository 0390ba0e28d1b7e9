package go_ballistics_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ballistics"
	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

func TestStandardDragCoefficientAtTablePoints(t *testing.T) {
	cases := []struct {
		table    go_ballistics.DragTable
		mach     float64
		expected float64
	}{
		{go_ballistics.DragTableG1, 0, 0.2629},
		{go_ballistics.DragTableG1, 1.0, 0.4805},
		{go_ballistics.DragTableG1, 2.0, 0.5934},
		{go_ballistics.DragTableG7, 0, 0.1198},
		{go_ballistics.DragTableG7, 1.0, 0.3803},
		{go_ballistics.DragTableG7, 2.0, 0.2980},
	}

	for _, c := range cases {
		cd := go_ballistics.StandardDragCoefficient(c.table, c.mach)
		assertEqual(t, cd.Value(), c.expected, 1e-9, c.table.String())
	}
}

func TestStandardDragCoefficientBetweenPoints(t *testing.T) {
	cd := go_ballistics.StandardDragCoefficient(go_ballistics.DragTableG1, 1.0125)
	if cd.Value() <= 0.4805 || cd.Value() >= 0.5136 {
		t.Errorf("G1 between 1.0 and 1.025 is out of range: %s", cd)
	}
}

func TestStandardDragCoefficientPolynomialTables(t *testing.T) {
	assertEqual(t, go_ballistics.StandardDragCoefficient(go_ballistics.DragTableGI, 0.5).Value(), 0.2282, 1e-9, "GI subsonic")
	assertEqual(t, go_ballistics.StandardDragCoefficient(go_ballistics.DragTableG2, 0.95).Value(),
		-2.240370+0.95*2.63867000, 1e-9, "G2 transonic")
	assertEqual(t, go_ballistics.StandardDragCoefficient(go_ballistics.DragTableG8, 1.5).Value(),
		0.639096+1.5*(-0.197471+1.5*0.0216221), 1e-9, "G8 supersonic")

	for _, table := range []go_ballistics.DragTable{go_ballistics.DragTableG5, go_ballistics.DragTableG6, go_ballistics.DragTableGL} {
		cd := go_ballistics.StandardDragCoefficient(table, 1.5)
		if cd.Value() <= 0 || cd.Value() > 1 {
			t.Errorf("%s at Mach 1.5 is out of range: %s", table, cd)
		}
	}
}

func TestUnknownDragTable(t *testing.T) {
	table := go_ballistics.DragTable(42)
	if table.Valid() {
		t.Errorf("table 42 must not be valid")
	}
	assertNaN(t, go_ballistics.StandardDragCoefficient(table, 1).Value(), "unknown table")
	if table.String() != "DragTable(42)" {
		t.Errorf("unexpected name %q", table.String())
	}
}

func TestParseDragTable(t *testing.T) {
	table, err := go_ballistics.ParseDragTable("g7")
	if err != nil || table != go_ballistics.DragTableG7 {
		t.Errorf("ParseDragTable(g7) failed: %v %v", table, err)
	}
	if _, err = go_ballistics.ParseDragTable("G3"); err == nil {
		t.Errorf("ParseDragTable(G3) must fail")
	}
}

func TestFormFactorAgainstTable(t *testing.T) {
	standard := go_ballistics.StandardDragCoefficient(go_ballistics.DragTableG7, 2.0)
	ff := go_ballistics.FormFactorAgainstTable(unit.CreateDragCoefficient(standard.Value()*1.1), go_ballistics.DragTableG7, 2.0)
	assertEqual(t, ff.Value(), 1.1, 1e-12, "FormFactorAgainstTable")
}

func TestCalculateMach(t *testing.T) {
	sos := go_ballistics.CalculateSpeedOfSound(unit.StandardTemperature())
	assertEqual(t, go_ballistics.CalculateMach(unit.CreateVelocity(sos.Value()*2), sos), 2, 1e-12, "Mach")
	if !math.IsInf(go_ballistics.CalculateMach(unit.CreateVelocity(1), unit.CreateSpeedOfSound(0)), 1) {
		t.Errorf("Mach for zero speed of sound must be infinite")
	}
}
