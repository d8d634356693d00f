package engine

// RequestDirection returns requested unless it is the exact reverse of
// current or not a direction at all, in which case current is kept.
func RequestDirection(requested, current Direction) Direction {
	if !requested.Valid() {
		return current
	}
	if requested == current.Opposite() {
		return current
	}
	return requested
}
