package go_ballistics

import (
	"math"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

//VelocityProjectionParams keeps the inputs of the velocity projection formula
type VelocityProjectionParams struct {
	//KnownMass is the mass of the bullet with the known velocity
	KnownMass unit.BulletMass
	//ProjectedMass is the mass of the bullet the velocity is projected for
	ProjectedMass unit.BulletMass
	//KnownVelocity is the velocity of the bullet with KnownMass
	KnownVelocity unit.Velocity
}

//CalculateVelocityProjection estimates the velocity of a second bullet from the mass
//and the velocity of a first bullet with similar ballistic characteristics, using
//the square root of the ratio of the masses.
//
//The result is NaN if the ratio of the masses is negative and infinite if
//the projected mass is zero.
func CalculateVelocityProjection(p VelocityProjectionParams) unit.VelocityProjection {
	return unit.CreateVelocityProjection(p.KnownVelocity.Value() * math.Sqrt(p.KnownMass.Value()/p.ProjectedMass.Value()))
}

//Projectile keeps description of a projectile
type Projectile struct {
	mass     unit.BulletMass
	diameter unit.BulletDiameter
	length   unit.BulletLength
}

//CreateProjectile creates the description of a projectile
//
//length is the length of the bullet in calibers
func CreateProjectile(mass unit.BulletMass, diameter unit.BulletDiameter, length unit.BulletLength) Projectile {
	return Projectile{mass: mass, diameter: diameter, length: length}
}

//Mass returns the mass of the projectile
func (v Projectile) Mass() unit.BulletMass {
	return v.mass
}

//Diameter returns the diameter (caliber) of the projectile
func (v Projectile) Diameter() unit.BulletDiameter {
	return v.diameter
}

//Length returns the length of the projectile in calibers
func (v Projectile) Length() unit.BulletLength {
	return v.length
}

//Energy returns the kinetic energy of the projectile at the velocity specified
func (v Projectile) Energy(velocity unit.Velocity) unit.KineticEnergy {
	return CalculateKineticEnergy(v.mass, velocity)
}

//Stability returns Miller's stability factor of the projectile at 2800 ft/s
//fired from a barrel with the twist specified
func (v Projectile) Stability(twist unit.RiflingTwist) unit.GyroscopicStability {
	return CalculateGyroscopicStability(StabilityParams{
		Mass:     v.mass,
		Twist:    twist,
		Diameter: v.diameter,
		Length:   v.length,
	})
}

//BallisticCoefficient returns the ballistic coefficient of the projectile with the form factor specified
func (v Projectile) BallisticCoefficient(formFactor unit.FormFactor) unit.BallisticCoefficient {
	return CalculateBallisticCoefficient(BallisticCoefficientParams{
		Mass:       v.mass,
		Diameter:   v.diameter,
		FormFactor: formFactor,
	})
}

//AerodynamicJump returns the aerodynamic jump of the projectile with the stability factor specified
func (v Projectile) AerodynamicJump(stability unit.GyroscopicStability) unit.AerodynamicJump {
	return CalculateAerodynamicJump(stability, v.length)
}

//ProjectVelocity estimates the velocity of another projectile fired with the same load
//when this projectile leaves the muzzle at the velocity specified
func (v Projectile) ProjectVelocity(velocity unit.Velocity, other Projectile) unit.VelocityProjection {
	return CalculateVelocityProjection(VelocityProjectionParams{
		KnownMass:     v.mass,
		ProjectedMass: other.mass,
		KnownVelocity: velocity,
	})
}
