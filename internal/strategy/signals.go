package strategy

// crossedAbove reports whether a moved from at-or-below b on the previous
// bar to strictly above b on this bar. The first bar has no prior reading
// and never fires; NaN on either bar fails both comparisons.
func crossedAbove(a, b []float64, i int) bool {
	if i == 0 {
		return false
	}
	return a[i] > b[i] && a[i-1] <= b[i-1]
}

// crossedBelow is the mirror downward crossover.
func crossedBelow(a, b []float64, i int) bool {
	if i == 0 {
		return false
	}
	return a[i] < b[i] && a[i-1] >= b[i-1]
}
