package unit

//ApertureSightCalibration keeps the movement of the point of aim for one click
//of an aperture sight in minutes of angle
type ApertureSightCalibration struct {
	value float64
}

//CreateApertureSightCalibration creates a click value expressed in MOA per click
func CreateApertureSightCalibration(moaPerClick float64) ApertureSightCalibration {
	return ApertureSightCalibration{value: moaPerClick}
}

//Value returns the click value in MOA per click
func (v ApertureSightCalibration) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v ApertureSightCalibration) Compare(other ApertureSightCalibration) int {
	return compare(v.value, other.value)
}

func (v ApertureSightCalibration) String() string {
	return format(v.value, 3, "MOA/click")
}

//AerodynamicJump keeps the vertical deflection caused by 1 mph of crosswind
//in minutes of angle
type AerodynamicJump struct {
	value float64
}

//CreateAerodynamicJump creates an aerodynamic jump expressed in MOA per mph of crosswind
func CreateAerodynamicJump(moaPerMph float64) AerodynamicJump {
	return AerodynamicJump{value: moaPerMph}
}

//Value returns the jump in MOA per mph of crosswind
func (v AerodynamicJump) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v AerodynamicJump) Compare(other AerodynamicJump) int {
	return compare(v.value, other.value)
}

func (v AerodynamicJump) String() string {
	return format(v.value, 3, "MOA/mph")
}

//WindJump keeps the vertical deflection caused by the crosswind in minutes of angle
type WindJump struct {
	value float64
}

//CreateWindJump creates a wind jump expressed in MOA
func CreateWindJump(moa float64) WindJump {
	return WindJump{value: moa}
}

//Value returns the jump in MOA
func (v WindJump) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v WindJump) Compare(other WindJump) int {
	return compare(v.value, other.value)
}

func (v WindJump) String() string {
	return format(v.value, 3, "MOA")
}
