package go_ballistics

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

const cFreezingPointTemperatureR float64 = 459.67
const cSpeedOfSound float64 = 49.0223
const cStabilityTemperatureOffset float64 = 460.0
const cA0 float64 = 1.24871
const cA1 float64 = 0.0988438
const cA2 float64 = 0.00152907
const cA3 float64 = -3.07031e-06
const cA4 float64 = 4.21329e-07
const cA5 float64 = 3.342e-04

//CalculateSpeedOfSound calculates the speed of sound in air at the temperature specified.
//
//The result is NaN for temperatures below the absolute zero (-459.67°F).
func CalculateSpeedOfSound(temperature unit.Temperature) unit.SpeedOfSound {
	return unit.CreateSpeedOfSound(cSpeedOfSound * math.Sqrt(temperature.Value()+cFreezingPointTemperatureR))
}

//AtmosphericCorrection keeps the inputs of the atmospheric correction of the stability factor
type AtmosphericCorrection struct {
	Temperature unit.Temperature
	Pressure    unit.Pressure
	//Stability is the stability factor to be corrected
	Stability unit.GyroscopicStability
}

//CorrectStabilityForAtmosphere applies the air temperature and pressure correction to
//the gyroscopic stability factor.
//
//The correction factor is exactly 1 at the standard temperature and pressure (59°F, 29.92inHg).
//The result is infinite if the pressure is zero.
func CorrectStabilityForAtmosphere(p AtmosphericCorrection) unit.GyroscopicStability {
	t := (p.Temperature.Value() + cStabilityTemperatureOffset) /
		(unit.StandardTemperatureValue + cStabilityTemperatureOffset)
	pr := unit.StandardPressureValue / p.Pressure.Value()
	return unit.CreateGyroscopicStability(p.Stability.Value() * (t * pr))
}

//Atmosphere describes the atmosphere conditions at the firing point
type Atmosphere struct {
	temperature unit.Temperature
	pressure    unit.Pressure
	humidity    float64
}

//CreateStandardAtmosphere creates the ICAO standard atmosphere (59°F, 29.92inHg, dry air)
func CreateStandardAtmosphere() Atmosphere {
	return Atmosphere{
		temperature: unit.StandardTemperature(),
		pressure:    unit.StandardPressure(),
	}
}

//CreateAtmosphere creates the atmosphere with the specified parameters
//
//humidity is the relative humidity either in 0..1 or in 0..100 range.
func CreateAtmosphere(temperature unit.Temperature, pressure unit.Pressure, humidity float64) (Atmosphere, error) {
	if humidity < 0 || humidity > 100 || math.IsNaN(humidity) {
		return CreateStandardAtmosphere(), fmt.Errorf("Atmosphere: humidity must be in 0..1 or 0..100 range")
	}

	if humidity > 1 {
		humidity = humidity / 100
	}

	return Atmosphere{
		temperature: temperature,
		pressure:    pressure,
		humidity:    humidity,
	}, nil
}

//Temperature returns the air temperature
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the air pressure
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns the relative humidity set in 0 to 1 coefficient
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.pressure, a.temperature, a.humidity*100)
}

//SpeedOfSound returns the speed of sound at the atmosphere temperature
func (a Atmosphere) SpeedOfSound() unit.SpeedOfSound {
	return CalculateSpeedOfSound(a.temperature)
}

//Mach returns the velocity expressed in fractions of the speed of sound in this atmosphere
func (a Atmosphere) Mach(velocity unit.Velocity) float64 {
	return CalculateMach(velocity, a.SpeedOfSound())
}

//Density returns the air density.
//
//The density is the sea level density scaled by the absolute temperature
//and by the partial pressure of dry air. It is equal to unit.AirDensitySeaLevel()
//for the standard atmosphere.
func (a Atmosphere) Density() unit.AirDensity {
	t := a.temperature.Value()
	p := a.pressure.Value()

	//vapour pressure is neglected at or below 0°F
	et := 0.0
	if t > 0.0 {
		et0 := cA0 + t*(cA1+t*(cA2+t*(cA3+t*cA4)))
		et = cA5 * a.humidity * et0
	}
	hc := (p - 0.3783*et) / unit.StandardPressureValue

	standardR := unit.StandardTemperatureValue + cFreezingPointTemperatureR
	return unit.CreateAirDensity(unit.AirDensitySeaLevelValue * (standardR / (t + cFreezingPointTemperatureR)) * hc)
}

//DensityFactor returns the ratio of the air density to the sea level density
func (a Atmosphere) DensityFactor() float64 {
	return a.Density().Value() / unit.AirDensitySeaLevelValue
}

//CorrectStability applies the atmospheric correction of this atmosphere to the stability factor
func (a Atmosphere) CorrectStability(stability unit.GyroscopicStability) unit.GyroscopicStability {
	return CorrectStabilityForAtmosphere(AtmosphericCorrection{
		Temperature: a.temperature,
		Pressure:    a.pressure,
		Stability:   stability,
	})
}
