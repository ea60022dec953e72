package units

import (
	"errors"
	"fmt"
	"math"
)

const (
	kmToMiles = 0.62137119223733
	mToFeet   = 3.280839895
)

var ErrNotANumber = errors.New("value is not a number")

type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "mi"
	Meters     Unit = "m"
	Feet       Unit = "ft"
)

// Direction controls how ConvertBack rounds its result.
// Range filters use Down for the lower bound and Up for the upper one,
// so a converted bound never excludes a boundary match.
type Direction string

const (
	Down Direction = "down"
	Up   Direction = "up"
	None Direction = "none"
)

// Convert maps a metric value (km, m) to the given unit.
// Only Miles and Feet change the value, anything else is identity.
// The result is rounded to 2 decimals.
func Convert(value float64, unit Unit) (float64, error) {
	if err := checkNumber(value); err != nil {
		return 0, err
	}
	return RoundTo2(value * factor(unit)), nil
}

// ConvertBack is the inverse of Convert.
func ConvertBack(value float64, unit Unit, direction Direction) (float64, error) {
	if err := checkNumber(value); err != nil {
		return 0, err
	}

	converted := value / factor(unit)
	switch direction {
	case Down:
		return math.Floor(converted), nil
	case Up:
		return math.Ceil(converted), nil
	default:
		return RoundTo2(converted), nil
	}
}

// DistanceUnit returns the unit used to display distances (and speeds, per hour).
func DistanceUnit(useImperialUnits bool) Unit {
	if useImperialUnits {
		return Miles
	}
	return Kilometers
}

// ElevationUnit returns the unit used to display ascent and descent.
func ElevationUnit(useImperialUnits bool) Unit {
	if useImperialUnits {
		return Feet
	}
	return Meters
}

func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

func factor(unit Unit) float64 {
	switch unit {
	case Miles:
		return kmToMiles
	case Feet:
		return mToFeet
	default:
		return 1
	}
}

func checkNumber(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrNotANumber, value)
	}
	return nil
}
