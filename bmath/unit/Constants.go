package unit

//Raw values of the standard constants
const (
	StandardGravityValue      float64 = 32.174  //ft/s²
	SpeedOfSoundSeaLevelValue float64 = 1116.28 //ft/s
	AirDensitySeaLevelValue   float64 = 0.0765  //lb/ft³
	StandardPressureValue     float64 = 29.92   //inHg, ICAO
	StandardTemperatureValue  float64 = 59.0    //°F, ICAO
)

//StandardGravity returns the standard gravitational acceleration on the Earth's surface
func StandardGravity() Gravity {
	return Gravity{value: StandardGravityValue}
}

//SpeedOfSoundSeaLevel returns the speed of sound at sea level
func SpeedOfSoundSeaLevel() SpeedOfSound {
	return SpeedOfSound{value: SpeedOfSoundSeaLevelValue}
}

//AirDensitySeaLevel returns the air density at sea level
func AirDensitySeaLevel() AirDensity {
	return AirDensity{value: AirDensitySeaLevelValue}
}

//StandardPressure returns the ICAO standard pressure
func StandardPressure() Pressure {
	return Pressure{value: StandardPressureValue}
}

//StandardTemperature returns the ICAO standard temperature
func StandardTemperature() Temperature {
	return Temperature{value: StandardTemperatureValue}
}
