package unit

//Velocity keeps a projectile velocity in feet per second
type Velocity struct {
	value float64
}

//CreateVelocity creates a velocity value expressed in feet per second
func CreateVelocity(fps float64) Velocity {
	return Velocity{value: fps}
}

//Value returns the velocity in feet per second
func (v Velocity) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v Velocity) Compare(other Velocity) int {
	return compare(v.value, other.value)
}

func (v Velocity) String() string {
	return format(v.value, 1, "ft/s")
}

//SpeedOfSound keeps the speed of sound in air in feet per second
type SpeedOfSound struct {
	value float64
}

//CreateSpeedOfSound creates a speed of sound value expressed in feet per second
func CreateSpeedOfSound(fps float64) SpeedOfSound {
	return SpeedOfSound{value: fps}
}

//Value returns the speed of sound in feet per second
func (v SpeedOfSound) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v SpeedOfSound) Compare(other SpeedOfSound) int {
	return compare(v.value, other.value)
}

func (v SpeedOfSound) String() string {
	return format(v.value, 2, "ft/s")
}

//VelocityProjection keeps the estimated velocity of a second bullet in feet per second
type VelocityProjection struct {
	value float64
}

//CreateVelocityProjection creates a projected velocity expressed in feet per second
func CreateVelocityProjection(fps float64) VelocityProjection {
	return VelocityProjection{value: fps}
}

//Value returns the projected velocity in feet per second
func (v VelocityProjection) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v VelocityProjection) Compare(other VelocityProjection) int {
	return compare(v.value, other.value)
}

//Velocity returns the projection as a velocity so it can be used as an input of other formulas
func (v VelocityProjection) Velocity() Velocity {
	return Velocity{value: v.value}
}

func (v VelocityProjection) String() string {
	return format(v.value, 1, "ft/s")
}

//WindSpeed keeps the wind speed in miles per hour
type WindSpeed struct {
	value float64
}

//CreateWindSpeed creates a wind speed value expressed in miles per hour
func CreateWindSpeed(mph float64) WindSpeed {
	return WindSpeed{value: mph}
}

//Value returns the wind speed in miles per hour
func (v WindSpeed) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v WindSpeed) Compare(other WindSpeed) int {
	return compare(v.value, other.value)
}

func (v WindSpeed) String() string {
	return format(v.value, 1, "mph")
}
