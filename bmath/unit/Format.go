//Package unit keeps the physical quantities used by the ballistic formulas.
//
//Every quantity is a separate type wrapping a single float64 value
//expressed in one fixed unit (feet, grains, inches, °F, inHg and so on).
//The value is not accessible for arithmetic, so a Distance can never be
//passed where a Velocity is expected, and two quantities can only be
//combined through the formulas of the go_ballistics package.
//
//The values are not validated: a negative mass or a NaN velocity
//are accepted as is.
package unit

import (
	"cmp"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

func format(value float64, accuracy int, unitName string) string {
	f := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(f, value, unitName)
}

//formatGrouped formats large values with thousands separators
func formatGrouped(value float64, accuracy int, unitName string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) < 1000 {
		return format(value, accuracy, unitName)
	}
	pattern := "#,###."
	for i := 0; i < accuracy; i++ {
		pattern += "#"
	}
	return humanize.FormatFloat(pattern, value) + unitName
}

func compare(a, b float64) int {
	return cmp.Compare(a, b)
}
