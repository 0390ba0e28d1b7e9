package unit

//KineticEnergy keeps the energy of a projectile in foot-pounds
type KineticEnergy struct {
	value float64
}

//CreateKineticEnergy creates an energy value expressed in foot-pounds
func CreateKineticEnergy(footPounds float64) KineticEnergy {
	return KineticEnergy{value: footPounds}
}

//Value returns the energy in foot-pounds
func (v KineticEnergy) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v KineticEnergy) Compare(other KineticEnergy) int {
	return compare(v.value, other.value)
}

func (v KineticEnergy) String() string {
	return formatGrouped(v.value, 1, "ft-lb")
}
