package indiepixel

import "errors"

// Sentinel errors for widget construction.
var (
	// ErrWeightsMismatch is returned when a pie chart has a different number
	// of colors and weights.
	ErrWeightsMismatch = errors.New("indiepixel: weights must have the same length as colors")

	// ErrZeroWeight is returned when pie chart weights sum to zero.
	ErrZeroWeight = errors.New("indiepixel: weights sum to zero")

	// ErrNegativeWeight is returned when a pie chart weight is negative.
	ErrNegativeWeight = errors.New("indiepixel: negative weight")
)
