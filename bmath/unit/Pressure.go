package unit

//Pressure keeps the air pressure in inches of mercury
type Pressure struct {
	value float64
}

//CreatePressure creates a pressure value expressed in inches of mercury
func CreatePressure(inHg float64) Pressure {
	return Pressure{value: inHg}
}

//Value returns the pressure in inches of mercury
func (v Pressure) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v Pressure) Compare(other Pressure) int {
	return compare(v.value, other.value)
}

func (v Pressure) String() string {
	return format(v.value, 2, "inHg")
}
