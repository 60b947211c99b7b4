package cg

// FillRule decides which regions of a path are interior from the signed
// number of edge crossings (windings) of a ray cast from a point.
type FillRule int

const (
	// Winding fills points with a non-zero winding number.
	Winding FillRule = iota
	// EvenOdd fills points crossed an odd number of times.
	EvenOdd
)

// Fills reports whether a point with the given winding number is interior.
func (r FillRule) Fills(windings int) bool {
	switch r {
	case Winding:
		return windings != 0
	case EvenOdd:
		return windings%2 != 0
	}
	return false
}

func (r FillRule) String() string {
	switch r {
	case Winding:
		return "Winding"
	case EvenOdd:
		return "EvenOdd"
	}
	return "FillRule(?)"
}
