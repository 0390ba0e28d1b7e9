//Package validate checks the inputs and the results of the ballistic formulas.
//
//The formulas never validate anything: they follow IEEE-754 and return
//±Inf or NaN for degenerate inputs. Callers that prefer an error to a
//non-finite result run the checks of this package first:
//
//	p := go_ballistics.StabilityParams{...}
//	if err := validate.Stability(p); err != nil {
//	    return err
//	}
//	s := go_ballistics.CalculateGyroscopicStability(p)
package validate

import (
	"errors"
	"fmt"
)

var (
	//ErrNotFinite indicates a NaN or infinite value.
	ErrNotFinite = errors.New("validate: value is not finite")

	//ErrNotPositive indicates a zero or negative value where a positive one is required.
	ErrNotPositive = errors.New("validate: value must be positive")

	//ErrBelowAbsoluteZero indicates a temperature below -459.67°F.
	ErrBelowAbsoluteZero = errors.New("validate: temperature below absolute zero")
)

//FieldError reports the input which failed a check.
type FieldError struct {
	Field string
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %g: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
