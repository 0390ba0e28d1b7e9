package unit

//Gravity keeps the gravitational acceleration in ft/s²
type Gravity struct {
	value float64
}

//CreateGravity creates a gravitational acceleration expressed in ft/s²
func CreateGravity(fps2 float64) Gravity {
	return Gravity{value: fps2}
}

//Value returns the acceleration in ft/s²
func (v Gravity) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v Gravity) Compare(other Gravity) int {
	return compare(v.value, other.value)
}

func (v Gravity) String() string {
	return format(v.value, 3, "ft/s²")
}

//AirDensity keeps the density of the air in lb/ft³
type AirDensity struct {
	value float64
}

//CreateAirDensity creates an air density expressed in lb/ft³
func CreateAirDensity(lbPerFt3 float64) AirDensity {
	return AirDensity{value: lbPerFt3}
}

//Value returns the density in lb/ft³
func (v AirDensity) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v AirDensity) Compare(other AirDensity) int {
	return compare(v.value, other.value)
}

func (v AirDensity) String() string {
	return format(v.value, 4, "lb/ft³")
}
