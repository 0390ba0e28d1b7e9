package unit

//TimeOfFlight keeps the time of flight (actual or theoretical) of a projectile in seconds
type TimeOfFlight struct {
	value float64
}

//CreateTimeOfFlight creates a time of flight expressed in seconds
func CreateTimeOfFlight(seconds float64) TimeOfFlight {
	return TimeOfFlight{value: seconds}
}

//Value returns the time of flight in seconds
func (v TimeOfFlight) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v TimeOfFlight) Compare(other TimeOfFlight) int {
	return compare(v.value, other.value)
}

func (v TimeOfFlight) String() string {
	return format(v.value, 3, "s")
}

//LagTime keeps the difference between the actual and the vacuum time of flight in seconds
type LagTime struct {
	value float64
}

//CreateLagTime creates a lag time expressed in seconds
func CreateLagTime(seconds float64) LagTime {
	return LagTime{value: seconds}
}

//Value returns the lag time in seconds
func (v LagTime) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v LagTime) Compare(other LagTime) int {
	return compare(v.value, other.value)
}

func (v LagTime) String() string {
	return format(v.value, 4, "s")
}
