package unit

//Temperature keeps the air temperature in degrees of Fahrenheit
type Temperature struct {
	value float64
}

//CreateTemperature creates a temperature value expressed in degrees of Fahrenheit.
//
//Values below the absolute zero (-459.67°F) are accepted, the formulas
//using them produce NaN.
func CreateTemperature(fahrenheit float64) Temperature {
	return Temperature{value: fahrenheit}
}

//Value returns the temperature in degrees of Fahrenheit
func (v Temperature) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v Temperature) Compare(other Temperature) int {
	return compare(v.value, other.value)
}

func (v Temperature) String() string {
	return format(v.value, 1, "°F")
}
