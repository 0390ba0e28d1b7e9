package go_ballistics

import (
	"fmt"
	"math"
	"strings"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

//DragTable identifies the standard projectile a drag coefficient is compared against
type DragTable byte

const (
	DragTableG1 DragTable = 1
	DragTableG2 DragTable = 2
	DragTableG5 DragTable = 3
	DragTableG6 DragTable = 4
	DragTableG7 DragTable = 5
	DragTableG8 DragTable = 6
	DragTableGL DragTable = 7
	DragTableGI DragTable = 8
)

var dragTableNames = map[DragTable]string{
	DragTableG1: "G1",
	DragTableG2: "G2",
	DragTableG5: "G5",
	DragTableG6: "G6",
	DragTableG7: "G7",
	DragTableG8: "G8",
	DragTableGL: "GL",
	DragTableGI: "GI",
}

//Valid returns true if the table is one of the DragTable* constants
func (t DragTable) Valid() bool {
	_, ok := dragTableNames[t]
	return ok
}

func (t DragTable) String() string {
	if name, ok := dragTableNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DragTable(%d)", byte(t))
}

//ParseDragTable returns the table by its name (G1, G7, ...), the name is case-insensitive
func ParseDragTable(name string) (DragTable, error) {
	for t, n := range dragTableNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("DragTable: unknown drag table %q", name)
}

type dragPoint struct {
	Mach, Cd float64
}

type curvePoint struct {
	A, B, C float64
}

//CalculateMach returns the velocity expressed in fractions of the speed of sound
func CalculateMach(velocity unit.Velocity, speedOfSound unit.SpeedOfSound) float64 {
	return velocity.Value() / speedOfSound.Value()
}

//StandardDragCoefficient returns the drag coefficient of the standard projectile
//of the table at the Mach number specified.
//
//NaN is returned for an unknown table.
func StandardDragCoefficient(table DragTable, mach float64) unit.DragCoefficient {
	return unit.CreateDragCoefficient(standardDrag(table, mach))
}

func standardDrag(table DragTable, mach float64) float64 {
	switch table {
	case DragTableG1:
		return dragByCurve(g1Points, g1Curve, mach)
	case DragTableG7:
		return dragByCurve(g7Points, g7Curve, mach)
	case DragTableG2:
		switch {
		case mach > 2.5:
			return 0.4465610 + mach*(-0.0958548+mach*0.00799645)
		case mach > 1.2:
			return 0.7016110 + mach*(-0.3075100+mach*0.05192560)
		case mach > 1.0:
			return -1.105010 + mach*(2.77195000-mach*1.26667000)
		case mach > 0.9:
			return -2.240370 + mach*2.63867000
		case mach >= 0.7:
			return 0.9099690 + mach*(-1.9017100+mach*1.21524000)
		default:
			return 0.2302760 + mach*(0.000210564-mach*0.1275050)
		}
	case DragTableG5:
		switch {
		case mach > 2.0:
			return 0.671388 + mach*(-0.185208+mach*0.0204508)
		case mach > 1.1:
			return 0.134374 + mach*(0.4378330-mach*0.1570190)
		case mach > 0.9:
			return -0.924258 + mach*1.24904
		case mach >= 0.6:
			return 0.654405 + mach*(-1.4275000+mach*0.998463)
		default:
			return 0.186386 + mach*(-0.0342136-mach*0.035691)
		}
	case DragTableG6:
		switch {
		case mach > 2.0:
			return 0.746228 + mach*(-0.255926+mach*0.0291726)
		case mach > 1.1:
			return 0.513638 + mach*(-0.015269-mach*0.0331221)
		case mach > 0.9:
			return -0.908802 + mach*1.25814
		case mach >= 0.6:
			return 0.366723 + mach*(-0.458435+mach*0.337906)
		default:
			return 0.264481 + mach*(-0.157237+mach*0.117441)
		}
	case DragTableG8:
		switch {
		case mach > 1.1:
			return 0.639096 + mach*(-0.197471+mach*0.0216221)
		case mach >= 0.925:
			return -12.9053 + mach*(24.9181-mach*11.6191)
		default:
			return 0.210589 + mach*(-0.00184895+mach*0.00211107)
		}
	case DragTableGI:
		switch {
		case mach > 1.65:
			return 0.845362 + mach*(-0.143989+mach*0.0113272)
		case mach > 1.2:
			return 0.630556 + mach*0.00701308
		case mach >= 0.7:
			return 0.531976 + mach*(-1.28079+mach*1.17628)
		default:
			return 0.2282
		}
	case DragTableGL:
		switch {
		case mach > 1.0:
			return 0.286629 + mach*(0.3588930-mach*0.0610598)
		case mach >= 0.8:
			return 1.59969 + mach*(-3.9465500+mach*2.831370)
		default:
			return 0.333118 + mach*(-0.498448+mach*0.474774)
		}
	default:
		return math.NaN()
	}
}

//buildCurve approximates the table by 2nd degree polynomials on three adjacent points,
//the first and the last segments are linear
func buildCurve(points []dragPoint) []curvePoint {
	n := len(points)
	curve := make([]curvePoint, n)

	rate := (points[1].Cd - points[0].Cd) / (points[1].Mach - points[0].Mach)
	curve[0] = curvePoint{A: 0, B: rate, C: points[0].Cd - points[0].Mach*rate}

	for i := 1; i < n-1; i++ {
		x1, x2, x3 := points[i-1].Mach, points[i].Mach, points[i+1].Mach
		y1, y2, y3 := points[i-1].Cd, points[i].Cd, points[i+1].Cd
		a := ((y3-y1)*(x2-x1) - (y2-y1)*(x3-x1)) / ((x3*x3-x1*x1)*(x2-x1) - (x2*x2-x1*x1)*(x3-x1))
		b := (y2 - y1 - a*(x2*x2-x1*x1)) / (x2 - x1)
		c := y1 - (a*x1*x1 + b*x1)
		curve[i] = curvePoint{A: a, B: b, C: c}
	}

	rate = (points[n-1].Cd - points[n-2].Cd) / (points[n-1].Mach - points[n-2].Mach)
	curve[n-1] = curvePoint{A: 0, B: rate, C: points[n-1].Cd - points[n-1].Mach*rate}
	return curve
}

func dragByCurve(points []dragPoint, curve []curvePoint, mach float64) float64 {
	mlo := 0
	mhi := len(curve) - 2

	for mhi-mlo > 1 {
		mid := (mhi + mlo) / 2
		if points[mid].Mach < mach {
			mlo = mid
		} else {
			mhi = mid
		}
	}

	m := mhi
	if points[mhi].Mach-mach > mach-points[mlo].Mach {
		m = mlo
	}
	return curve[m].C + mach*(curve[m].B+curve[m].A*mach)
}

//DragComparison keeps the drag coefficients of a bullet and of a standard bullet
//measured at the same speed
type DragComparison struct {
	//DragCoefficient is the drag coefficient of the bullet
	DragCoefficient unit.DragCoefficient
	//StandardDragCoefficient is the drag coefficient of a standard (G1, G7, etc.) bullet
	StandardDragCoefficient unit.DragCoefficient
}

//CalculateFormFactor returns the relation of drag between a bullet and a standard bullet.
//
//The result is infinite (or NaN for 0/0) if the standard drag coefficient is zero.
func CalculateFormFactor(p DragComparison) unit.FormFactor {
	return unit.CreateFormFactor(p.DragCoefficient.Value() / p.StandardDragCoefficient.Value())
}

//FormFactorAgainstTable returns the form factor of a bullet with the drag coefficient
//specified measured at the Mach number specified vs the standard projectile of the table
func FormFactorAgainstTable(dragCoefficient unit.DragCoefficient, table DragTable, mach float64) unit.FormFactor {
	return CalculateFormFactor(DragComparison{
		DragCoefficient:         dragCoefficient,
		StandardDragCoefficient: StandardDragCoefficient(table, mach),
	})
}

//BallisticCoefficientParams keeps the inputs of the ballistic coefficient formula
type BallisticCoefficientParams struct {
	Mass       unit.BulletMass
	Diameter   unit.BulletDiameter
	FormFactor unit.FormFactor
}

//CalculateBallisticCoefficient returns the ballistic coefficient of a bullet:
//its sectional density (mass in pounds over diameter squared) divided by the form factor.
//
//The result is infinite if the diameter or the form factor is zero.
func CalculateBallisticCoefficient(p BallisticCoefficientParams) unit.BallisticCoefficient {
	d := p.Diameter.Value()
	return unit.CreateBallisticCoefficient((p.Mass.Value() / 7000.0) / (d * d * p.FormFactor.Value()))
}
