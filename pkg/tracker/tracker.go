// Package tracker derives calorie expenditure from recorded activity
// attributes. The computation is pure: callers pass the stored
// measurements and get a number or an error back.
package tracker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownActivity    = errors.New("tracker: unknown activity type")
	ErrInvalidMeasurement = errors.New("tracker: invalid measurement")
)

// Base MET values per activity kind. Running and cycling are adjusted for
// pace below; the rest use the flat value.
var baseMET = map[string]float64{
	"running":  9.8,
	"walking":  3.5,
	"cycling":  7.5,
	"swimming": 8.0,
	"rowing":   7.0,
	"hiking":   6.0,
}

const lbsPerKg = 2.20462

// Calculate returns the calories burned for one session. Weight is in
// pounds, distance in miles, time in minutes. It fails on an unrecognized
// activity type, non-positive weight or time, or negative distance.
func Calculate(activityType string, weightLbs, distanceMiles, timeMinutes float64) (float64, error) {
	met, ok := baseMET[strings.ToLower(strings.TrimSpace(activityType))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, activityType)
	}
	if weightLbs <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidMeasurement, weightLbs)
	}
	if timeMinutes <= 0 {
		return 0, fmt.Errorf("%w: time must be positive, got %v", ErrInvalidMeasurement, timeMinutes)
	}
	if distanceMiles < 0 {
		return 0, fmt.Errorf("%w: distance must be non-negative, got %v", ErrInvalidMeasurement, distanceMiles)
	}

	hours := timeMinutes / 60
	if distanceMiles > 0 {
		met = adjustForPace(activityType, met, distanceMiles/hours)
	}
	return met * (weightLbs / lbsPerKg) * hours, nil
}

// adjustForPace scales the MET for speed-sensitive activities. A faster
// mile costs more than the flat table suggests.
func adjustForPace(activityType string, met, mph float64) float64 {
	switch strings.ToLower(strings.TrimSpace(activityType)) {
	case "running":
		// Roughly 1.61 MET per mph, anchored at 6 mph = 9.8 MET.
		if v := mph * 9.8 / 6.0; v > met {
			return v
		}
	case "cycling":
		if mph > 14 {
			return 10.0
		}
		if mph > 10 {
			return 8.0
		}
	}
	return met
}
