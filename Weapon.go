package go_ballistics

import "github.com/gehtsoft-usa/go_ballistics/bmath/unit"

//cApertureSightFactor is the number of MOA in one radian divided by 20 clicks
const cApertureSightFactor float64 = 171.89

//ApertureSight keeps the caliper measurements of an aperture sight
type ApertureSight struct {
	//TwentyClickMovement is the sight movement for 20 clicks in inches
	TwentyClickMovement unit.SightCalibration
	//SightRadius is the distance between the front and the rear sight in inches
	SightRadius unit.SightCalibration
}

//CalculateApertureSightCalibration returns the movement of the point of aim in MOA
//for each click of an aperture sight.
//
//A zero sight radius produces an infinite result with the sign of the movement (NaN for 0/0).
func CalculateApertureSightCalibration(p ApertureSight) unit.ApertureSightCalibration {
	return unit.CreateApertureSightCalibration(cApertureSightFactor * (p.TwentyClickMovement.Value() / p.SightRadius.Value()))
}

//Rifle keeps the description of the weapon
type Rifle struct {
	twist    unit.RiflingTwist
	hasSight bool
	sight    ApertureSight
}

//CreateRifle creates a rifle with no aperture sight
func CreateRifle(twist unit.RiflingTwist) Rifle {
	return Rifle{twist: twist}
}

//CreateRifleWithSight creates a rifle with an aperture sight
func CreateRifleWithSight(twist unit.RiflingTwist, sight ApertureSight) Rifle {
	return Rifle{twist: twist, hasSight: true, sight: sight}
}

//Twist returns the rifling twist in calibers per turn
func (v Rifle) Twist() unit.RiflingTwist {
	return v.twist
}

//HasSight returns the flag indicating whether the aperture sight is set
func (v Rifle) HasSight() bool {
	return v.hasSight
}

//Sight returns the aperture sight measurements
func (v Rifle) Sight() ApertureSight {
	return v.sight
}

//ClickValue returns MOA per click of the aperture sight and false if no sight is set
func (v Rifle) ClickValue() (unit.ApertureSightCalibration, bool) {
	if !v.hasSight {
		return unit.ApertureSightCalibration{}, false
	}
	return CalculateApertureSightCalibration(v.sight), true
}

//Stability returns the stability factor of the projectile fired from this rifle
//at the muzzle velocity specified and in the atmosphere specified
func (v Rifle) Stability(projectile Projectile, muzzleVelocity unit.Velocity, atmosphere Atmosphere) unit.GyroscopicStability {
	s := projectile.Stability(v.twist)
	s = CorrectStabilityForVelocity(muzzleVelocity, s)
	return atmosphere.CorrectStability(s)
}
