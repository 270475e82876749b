package sortable

// SortBy describes how a single field may be sorted: in which direction(s),
// and which direction is used the first time the field becomes active.
// A nil *SortBy marks a field as unsortable.
type SortBy struct {
	direction  Direction
	reversible bool
}

// Unsortable returns the descriptor of a field that cannot be sorted.
func Unsortable() *SortBy {
	return nil
}

// Increasing returns a descriptor for a field that is only ever sorted
// in ascending order.
func Increasing() *SortBy {
	return &SortBy{direction: DirectionAsc}
}

// Decreasing returns a descriptor for a field that is only ever sorted
// in descending order.
func Decreasing() *SortBy {
	return &SortBy{direction: DirectionDesc}
}

// IncreasingOrDecreasing returns a descriptor for a field that may be
// sorted in either direction, starting ascending.
func IncreasingOrDecreasing() *SortBy {
	return &SortBy{direction: DirectionAsc, reversible: true}
}

// DecreasingOrIncreasing returns a descriptor for a field that may be
// sorted in either direction, starting descending.
func DecreasingOrIncreasing() *SortBy {
	return &SortBy{direction: DirectionDesc, reversible: true}
}

// Direction returns the initial direction of the descriptor. For fixed
// descriptors this is the only legal direction.
func (sortBy *SortBy) Direction() Direction {
	return sortBy.direction
}

// Reversible returns true if the field may be toggled between both
// directions.
func (sortBy *SortBy) Reversible() bool {
	return sortBy.reversible
}

// EnsureDirection clamps a requested direction to one the descriptor
// permits. Fixed descriptors silently correct the request to their one
// legal direction, so that state restored from an external source (e.g.
// URL parameters) can never violate the descriptor.
func (sortBy *SortBy) EnsureDirection(requested Direction) Direction {
	if sortBy.reversible {
		return requested
	}

	return sortBy.direction
}
