package domain

import "fmt"

// Location identifies one of the two linked stock locations. The business runs
// exactly two: bottles arrive at the warehouse and are transferred to the bar,
// where both bottle and pour sales happen.
type Location int

const (
	Warehouse Location = 1
	Bar       Location = 2
)

// Valid reports whether l is one of the two known locations.
func (l Location) Valid() bool {
	switch l {
	case Warehouse, Bar:
		return true
	}
	return false
}

func (l Location) String() string {
	switch l {
	case Warehouse:
		return "warehouse"
	case Bar:
		return "bar"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// ParseLocation converts the persisted numeric form back to a Location.
func ParseLocation(n int) (Location, error) {
	l := Location(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: unknown location %d", ErrInvalidInput, n)
	}
	return l, nil
}
