//Package chrono summarizes chronograph velocity strings.
//
//The mean velocity of a string is what a reloading tool feeds into the
//formulas as the muzzle velocity; the spread and the deviation tell how
//much the derived quantities move from shot to shot.
package chrono

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/gehtsoft-usa/go_ballistics/bmath/unit"
)

//ErrNoShots is returned for an empty velocity string.
var ErrNoShots = errors.New("chrono: no shots")

//Summary keeps the statistics of a velocity string.
type Summary struct {
	shots             int
	mean              float64
	median            float64
	min               float64
	max               float64
	standardDeviation float64
}

//Summarize calculates the statistics of the velocities measured over a chronograph.
func Summarize(shots []unit.Velocity) (Summary, error) {
	if len(shots) == 0 {
		return Summary{}, ErrNoShots
	}

	data := make(stats.Float64Data, 0, len(shots))
	for _, s := range shots {
		data = append(data, s.Value())
	}

	var (
		sum Summary
		err error
	)
	sum.shots = len(shots)
	if sum.mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("chrono: mean: %w", err)
	}
	if sum.median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("chrono: median: %w", err)
	}
	if sum.min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("chrono: min: %w", err)
	}
	if sum.max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("chrono: max: %w", err)
	}
	if len(shots) > 1 {
		if sum.standardDeviation, err = stats.StandardDeviationSample(data); err != nil {
			return Summary{}, fmt.Errorf("chrono: standard deviation: %w", err)
		}
	}
	return sum, nil
}

//Shots returns the number of shots in the string.
func (s Summary) Shots() int {
	return s.shots
}

//Mean returns the average velocity.
func (s Summary) Mean() unit.Velocity {
	return unit.CreateVelocity(s.mean)
}

//Median returns the median velocity.
func (s Summary) Median() unit.Velocity {
	return unit.CreateVelocity(s.median)
}

//Min returns the slowest shot.
func (s Summary) Min() unit.Velocity {
	return unit.CreateVelocity(s.min)
}

//Max returns the fastest shot.
func (s Summary) Max() unit.Velocity {
	return unit.CreateVelocity(s.max)
}

//ExtremeSpread returns the difference between the fastest and the slowest shot in ft/s.
func (s Summary) ExtremeSpread() float64 {
	return s.max - s.min
}

//StandardDeviation returns the sample standard deviation in ft/s, zero for a single shot.
func (s Summary) StandardDeviation() float64 {
	return s.standardDeviation
}

func (s Summary) String() string {
	return fmt.Sprintf("%d shots, mean %s, ES %.1f, SD %.1f", s.shots, s.Mean(), s.ExtremeSpread(), s.standardDeviation)
}
