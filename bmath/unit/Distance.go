package unit

//Distance keeps the distance travelled by a projectile in feet
type Distance struct {
	value float64
}

//CreateDistance creates a distance value expressed in feet
func CreateDistance(feet float64) Distance {
	return Distance{value: feet}
}

//Value returns the distance in feet
func (v Distance) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v Distance) Compare(other Distance) int {
	return compare(v.value, other.value)
}

func (v Distance) String() string {
	return formatGrouped(v.value, 1, "ft")
}

//BulletDiameter keeps the diameter (caliber) of a bullet in inches
type BulletDiameter struct {
	value float64
}

//CreateBulletDiameter creates a bullet diameter expressed in inches
func CreateBulletDiameter(inches float64) BulletDiameter {
	return BulletDiameter{value: inches}
}

//Value returns the diameter in inches
func (v BulletDiameter) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v BulletDiameter) Compare(other BulletDiameter) int {
	return compare(v.value, other.value)
}

func (v BulletDiameter) String() string {
	return format(v.value, 3, "in")
}

//BulletLength keeps the length of a bullet in calibers
type BulletLength struct {
	value float64
}

//CreateBulletLength creates a bullet length expressed in calibers
//(the length of the bullet divided by its diameter)
func CreateBulletLength(calibers float64) BulletLength {
	return BulletLength{value: calibers}
}

//Value returns the length in calibers
func (v BulletLength) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v BulletLength) Compare(other BulletLength) int {
	return compare(v.value, other.value)
}

func (v BulletLength) String() string {
	return format(v.value, 2, "cal")
}

//RiflingTwist keeps the rifling twist of a barrel in calibers per turn
type RiflingTwist struct {
	value float64
}

//CreateRiflingTwist creates a rifling twist expressed in calibers per turn
func CreateRiflingTwist(calibersPerTurn float64) RiflingTwist {
	return RiflingTwist{value: calibersPerTurn}
}

//Value returns the twist in calibers per turn
func (v RiflingTwist) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v RiflingTwist) Compare(other RiflingTwist) int {
	return compare(v.value, other.value)
}

func (v RiflingTwist) String() string {
	return format(v.value, 1, "cal/turn")
}

//SightCalibration keeps either the sight movement for 20 clicks or
//the sight radius in inches
type SightCalibration struct {
	value float64
}

//CreateSightCalibration creates a sight measurement expressed in inches
func CreateSightCalibration(inches float64) SightCalibration {
	return SightCalibration{value: inches}
}

//Value returns the measurement in inches
func (v SightCalibration) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v SightCalibration) Compare(other SightCalibration) int {
	return compare(v.value, other.value)
}

func (v SightCalibration) String() string {
	return format(v.value, 3, "in")
}

//WindDeflection keeps the deflection of a bullet caused by a crosswind in inches
type WindDeflection struct {
	value float64
}

//CreateWindDeflection creates a wind deflection expressed in inches
func CreateWindDeflection(inches float64) WindDeflection {
	return WindDeflection{value: inches}
}

//Value returns the deflection in inches
func (v WindDeflection) Value() float64 {
	return v.value
}

//Compare returns -1, 0 or +1 depending on whether v is less, equal or greater than other
func (v WindDeflection) Compare(other WindDeflection) int {
	return compare(v.value, other.value)
}

func (v WindDeflection) String() string {
	return format(v.value, 2, "in")
}
