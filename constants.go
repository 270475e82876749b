package sortable

// Direction describes the direction a field is ordered in.
type Direction string

const (
	// DirectionAsc describes ascending order.
	DirectionAsc Direction = "ASC"

	// DirectionDesc describes descending order.
	DirectionDesc Direction = "DESC"
)

// Reverse returns the opposite direction.
func (direction Direction) Reverse() Direction {
	if direction == DirectionAsc {
		return DirectionDesc
	}

	return DirectionAsc
}

// NullHandling describes where values without a defined order (nulls) are
// placed. Null placement is independent of the sort direction, mirroring
// the NULLS FIRST / NULLS LAST modifiers of a SQL ORDER BY clause.
type NullHandling string

const (
	// NullsFirst places null values before all ordered values.
	NullsFirst NullHandling = "FIRST"

	// NullsLast places null values after all ordered values. This is the
	// default null handling.
	NullsLast NullHandling = "LAST"
)

// Ordering is the result of a three-way comparison between two values.
type Ordering int

const (
	// OrderingLess indicates that the first value sorts before the second.
	OrderingLess Ordering = -1

	// OrderingEqual indicates that both values sort equally.
	OrderingEqual Ordering = 0

	// OrderingGreater indicates that the first value sorts after the second.
	OrderingGreater Ordering = 1
)

// Reverse returns the ordering with both sides swapped.
func (ordering Ordering) Reverse() Ordering {
	return -ordering
}
