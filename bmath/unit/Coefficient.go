package unit

//DragCoefficient keeps the drag coefficient of a bullet at some speed
type DragCoefficient struct {
	value float64
}

//CreateDragCoefficient creates a drag coefficient
func CreateDragCoefficient(cd float64) DragCoefficient {
	return DragCoefficient{value: cd}
}

//Value returns the coefficient
func (v DragCoefficient) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v DragCoefficient) Compare(other DragCoefficient) int {
	return compare(v.value, other.value)
}

func (v DragCoefficient) String() string {
	return format(v.value, 4, "")
}

//FormFactor keeps the relation between the drag of a bullet and the drag of
//a standard bullet at the same speed
type FormFactor struct {
	value float64
}

//CreateFormFactor creates a form factor
func CreateFormFactor(ratio float64) FormFactor {
	return FormFactor{value: ratio}
}

//Value returns the form factor
func (v FormFactor) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v FormFactor) Compare(other FormFactor) int {
	return compare(v.value, other.value)
}

func (v FormFactor) String() string {
	return format(v.value, 3, "")
}

//GyroscopicStability keeps the gyroscopic stability factor (Miller's formula)
type GyroscopicStability struct {
	value float64
}

//CreateGyroscopicStability creates a stability factor
func CreateGyroscopicStability(factor float64) GyroscopicStability {
	return GyroscopicStability{value: factor}
}

//Value returns the stability factor
func (v GyroscopicStability) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v GyroscopicStability) Compare(other GyroscopicStability) int {
	return compare(v.value, other.value)
}

func (v GyroscopicStability) String() string {
	return format(v.value, 2, "")
}

//BallisticCoefficient keeps the ballistic coefficient of a bullet
//(sectional density divided by the form factor, lb/in²)
type BallisticCoefficient struct {
	value float64
}

//CreateBallisticCoefficient creates a ballistic coefficient
func CreateBallisticCoefficient(bc float64) BallisticCoefficient {
	return BallisticCoefficient{value: bc}
}

//Value returns the coefficient
func (v BallisticCoefficient) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v BallisticCoefficient) Compare(other BallisticCoefficient) int {
	return compare(v.value, other.value)
}

func (v BallisticCoefficient) String() string {
	return format(v.value, 3, "")
}
