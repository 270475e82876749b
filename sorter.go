package sortable

import "sort"

// Field is the contract a sortable field type has to fulfil. A field type
// is a small comparable value (typically an integer enum with one variant
// per column) that knows how it may be sorted, where its null values are
// placed, and how to compare two rows of type T by its value.
//
// PartialCompareBy returns the ordering of a and b under the field, and
// whether that ordering is defined at all. It must report an undefined
// ordering for the self-comparison of a row exactly when the row's value
// for the field is a null value (NaN, unknown, absent). This
// self-comparison is how the engine classifies which side of an undefined
// pair is null.
type Field[T any] interface {
	comparable

	// SortBy returns the sort descriptor of the field, or nil if the
	// field is unsortable.
	SortBy() *SortBy

	// NullHandling returns where null values of the field are placed.
	NullHandling() NullHandling

	// PartialCompareBy compares two rows by the field's value. The
	// returned bool is false if the two values have no defined order.
	PartialCompareBy(a, b T) (Ordering, bool)
}

// Sorter tracks which field a collection of rows is ordered by, and in
// which direction. One Sorter instance backs one sortable view; it is not
// safe for concurrent use.
//
// The zero value of F is the initially active field.
type Sorter[T any, F Field[T]] struct {
	field     F
	direction Direction
	onChange  func(F, Direction)
}

// NewSorter creates a Sorter with the zero field active, sorted in that
// field's initial direction. Options may preset a different state or
// register a change observer.
func NewSorter[T any, F Field[T]](options ...Option[T, F]) *Sorter[T, F] {
	var field F

	direction := DirectionAsc
	if sortBy := field.SortBy(); sortBy != nil {
		direction = sortBy.Direction()
	}

	sorter := &Sorter[T, F]{
		field:     field,
		direction: direction,
	}

	for _, option := range options {
		option(sorter)
	}

	return sorter
}

// State returns the active field and its direction.
func (sorter *Sorter[T, F]) State() (F, Direction) {
	return sorter.field, sorter.direction
}

// ToggleField activates the given field the way a click on a column
// header does. Re-activating the active field reverses the direction if
// the field is reversible; activating a different field starts over at
// that field's initial direction. Fixed fields always land on their one
// legal direction, and unsortable fields are ignored entirely.
func (sorter *Sorter[T, F]) ToggleField(field F) {
	sortBy := field.SortBy()
	if sortBy == nil {
		// Never switch to an unsortable field
		return
	}

	direction := sortBy.Direction()
	if sortBy.Reversible() && field == sorter.field {
		direction = sorter.direction.Reverse()
	}

	sorter.set(field, direction)
}

// SetField activates the given field in the requested direction. Unlike
// ToggleField this is absolute: applying the same state twice yields the
// same state, which makes it suitable for restoring externally held state.
// Directions a fixed field does not permit are silently corrected, and
// unsortable fields are ignored.
func (sorter *Sorter[T, F]) SetField(field F, requested Direction) {
	sortBy := field.SortBy()
	if sortBy == nil {
		return
	}

	sorter.set(field, sortBy.EnsureDirection(requested))
}

func (sorter *Sorter[T, F]) set(field F, direction Direction) {
	sorter.field = field
	sorter.direction = direction

	if sorter.onChange != nil {
		sorter.onChange(field, direction)
	}
}

// Sort stably sorts items in place by the active field and direction.
// Rows whose value for the active field is null are gathered at the start
// or end of the result per the field's null handling, regardless of
// direction. Rows that compare equal (or are both null) keep their
// relative order.
func (sorter *Sorter[T, F]) Sort(items []T) {
	field, direction := sorter.State()
	sortBy(field, direction, field.NullHandling(), items)
}

func sortBy[T any, F Field[T]](field F, direction Direction, nulls NullHandling, items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return compareRows(field, direction, nulls, items[i], items[j]) == OrderingLess
	})
}

func compareRows[T any, F Field[T]](field F, direction Direction, nulls NullHandling, a, b T) Ordering {
	if ordering, ok := field.PartialCompareBy(a, b); ok {
		// The direction is applied only to ordered pairs. Reversing
		// before null classification would corrupt null placement.
		if direction == DirectionDesc {
			return ordering.Reverse()
		}

		return ordering
	}

	_, aOrdered := field.PartialCompareBy(a, a)
	_, bOrdered := field.PartialCompareBy(b, b)

	switch {
	case !aOrdered && !bOrdered:
		return OrderingEqual
	case !aOrdered:
		return nullOrdering(nulls)
	case !bOrdered:
		return nullOrdering(nulls).Reverse()
	}

	// Both rows compare against themselves but not against each other.
	// The field's comparator broke its contract, and any ordering we pick
	// here would make the sort order depend on input order.
	panic("sortable: field comparator returned no ordering for two non-null values")
}

func nullOrdering(nulls NullHandling) Ordering {
	if nulls == NullsFirst {
		return OrderingLess
	}

	return OrderingGreater
}
