package go_ballistics

import "github.com/gehtsoft-usa/go_ballistics/bmath/unit"

//LagTimeParams keeps the inputs of the lag time formula
type LagTimeParams struct {
	//ActualTimeOfFlight is the measured time of flight to the distance
	ActualTimeOfFlight unit.TimeOfFlight
	Distance           unit.Distance
	MuzzleVelocity     unit.Velocity
}

//CalculateLagTime returns the difference between the actual time of flight and
//the time of flight in vacuum (distance / muzzle velocity).
//
//A zero muzzle velocity produces an infinite result, or NaN when the distance is zero too.
func CalculateLagTime(p LagTimeParams) unit.LagTime {
	vacuumTimeOfFlight := p.Distance.Value() / p.MuzzleVelocity.Value()
	return unit.CreateLagTime(p.ActualTimeOfFlight.Value() - vacuumTimeOfFlight)
}

//CalculateWindDeflection returns the deflection in inches of a bullet with the lag time specified
//caused by a crosswind (full value) of the speed specified
func CalculateWindDeflection(lag unit.LagTime, crosswind unit.WindSpeed) unit.WindDeflection {
	return unit.CreateWindDeflection(17.6 * crosswind.Value() * lag.Value())
}

//Wind keeps the crosswind acting on a bullet
type Wind struct {
	crosswind unit.WindSpeed
}

//CreateWind creates a full value crosswind
func CreateWind(crosswind unit.WindSpeed) Wind {
	return Wind{crosswind: crosswind}
}

//Crosswind returns the speed of the crosswind
func (v Wind) Crosswind() unit.WindSpeed {
	return v.crosswind
}

//Deflection returns the deflection of a bullet with the lag time specified
func (v Wind) Deflection(lag unit.LagTime) unit.WindDeflection {
	return CalculateWindDeflection(lag, v.crosswind)
}

//Jump returns the aerodynamic jump in MOA caused by this wind for the bullet specified
func (v Wind) Jump(stability unit.GyroscopicStability, length unit.BulletLength) unit.WindJump {
	return unit.CreateWindJump(CalculateAerodynamicJump(stability, length).Value() * v.crosswind.Value())
}
