package chromlgs

// Fraction returns num/denom, or 0 when denom is 0.
func Fraction(num, denom int) float64 {
	if denom == 0 {
		return 0
	}

	return float64(num) / float64(denom)
}
