package sortable

// Option configures a Sorter at construction time.
type Option[T any, F Field[T]] func(*Sorter[T, F])

// WithField presets the active field. Unsortable fields are ignored, and
// the direction is reset to the field's initial direction.
func WithField[T any, F Field[T]](field F) Option[T, F] {
	return func(sorter *Sorter[T, F]) {
		if sortBy := field.SortBy(); sortBy != nil {
			sorter.field = field
			sorter.direction = sortBy.Direction()
		}
	}
}

// WithDirection presets the sort direction, clamped to what the active
// field permits. Combine with WithField to preset a full state.
func WithDirection[T any, F Field[T]](direction Direction) Option[T, F] {
	return func(sorter *Sorter[T, F]) {
		if sortBy := sorter.field.SortBy(); sortBy != nil {
			sorter.direction = sortBy.EnsureDirection(direction)
		}
	}
}

// OnChange registers an observer that is called after every state change
// made through ToggleField or SetField. Hosts use this to trigger a
// re-render after a mutation.
func OnChange[T any, F Field[T]](observer func(F, Direction)) Option[T, F] {
	return func(sorter *Sorter[T, F]) {
		sorter.onChange = observer
	}
}
