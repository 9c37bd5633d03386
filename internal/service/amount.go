package service

import "math"

// maxAmount caps record amounts at 100 billion, matching the 12-digit,
// 2-decimal storage format.
const maxAmount = 1e11

// validateAmount enforces: positive, within limit, at most 2 decimal places.
func validateAmount(field string, v float64) error {
	if v <= 0 {
		return invalidf("%s must be positive", field)
	}
	if v > maxAmount {
		return invalidf("%s exceeds maximum limit", field)
	}
	cents := v * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return invalidf("%s cannot have more than 2 decimal places", field)
	}
	return nil
}
