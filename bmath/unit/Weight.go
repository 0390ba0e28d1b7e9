package unit

//BulletMass keeps the mass of a bullet in grains
type BulletMass struct {
	value float64
}

//CreateBulletMass creates a bullet mass value expressed in grains
func CreateBulletMass(grains float64) BulletMass {
	return BulletMass{value: grains}
}

//Value returns the mass in grains
func (v BulletMass) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v BulletMass) Compare(other BulletMass) int {
	return compare(v.value, other.value)
}

func (v BulletMass) String() string {
	return format(v.value, 1, "gr")
}
