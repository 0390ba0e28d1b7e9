package go_ballistics

import (
	"math"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

//cStabilityReferenceVelocity is the velocity (ft/s) Miller's formula is calibrated for
const cStabilityReferenceVelocity float64 = 2800.0

//StabilityParams keeps the inputs of Miller's stability formula
type StabilityParams struct {
	//Mass is the mass of the bullet in grains
	Mass unit.BulletMass
	//Twist is the rifling twist in calibers per turn
	Twist unit.RiflingTwist
	//Diameter is the bullet diameter in inches
	Diameter unit.BulletDiameter
	//Length is the bullet length in calibers
	Length unit.BulletLength
}

//CalculateGyroscopicStability calculates the gyroscopic stability factor of a bullet
//using Miller's stability formula.
//
//The factor is valid for the velocity of 2800 ft/s, use CorrectStabilityForVelocity
//for other velocities. The result is infinite if the twist, the diameter or
//the length is zero.
func CalculateGyroscopicStability(p StabilityParams) unit.GyroscopicStability {
	t := p.Twist.Value()
	d := p.Diameter.Value()
	l := p.Length.Value()
	return unit.CreateGyroscopicStability((30.0 * p.Mass.Value()) / (t * t * (d * d * d) * l * (1.0 + l*l)))
}

//CorrectStabilityForVelocity applies the velocity correction to the stability factor
//calculated for 2800 ft/s: the factor is multiplied by the cube root of v/2800.
//
//The exponent is the real 1/3. A negative velocity produces NaN.
func CorrectStabilityForVelocity(muzzleVelocity unit.Velocity, stability unit.GyroscopicStability) unit.GyroscopicStability {
	factor := math.Pow(muzzleVelocity.Value()/cStabilityReferenceVelocity, 1.0/3.0)
	return unit.CreateGyroscopicStability(stability.Value() * factor)
}

//CalculateAerodynamicJump calculates the vertical deflection in MOA caused by 1 mph
//of crosswind for a bullet with the stability factor and length specified.
//
//The formula is empirical and valid for typical small arms only.
func CalculateAerodynamicJump(stability unit.GyroscopicStability, length unit.BulletLength) unit.AerodynamicJump {
	return unit.CreateAerodynamicJump(0.01*stability.Value() - 0.0024*length.Value() + 0.032)
}
