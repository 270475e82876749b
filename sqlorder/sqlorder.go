// Package sqlorder renders sort state as SQL ORDER BY terms with correct
// null placement per database dialect. It is the SQL twin of the in-memory
// sort engine: the same (field, direction, null handling) triple that
// drives Sorter.Sort can be handed to a database instead.
package sqlorder

import (
	"github.com/tableaux-project/sortable"
)

// Builder is the dialect specific contract for rendering a single ORDER BY
// term for a column.
type Builder interface {
	OrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string
}

// Postgres renders ORDER BY terms with native NULLS FIRST / NULLS LAST
// modifiers.
type Postgres struct {
}

func (Postgres) OrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	return nativeOrderColumn(column, direction, nulls)
}

// SQLite renders ORDER BY terms with native NULLS FIRST / NULLS LAST
// modifiers, supported since SQLite 3.30.
type SQLite struct {
}

func (SQLite) OrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	return nativeOrderColumn(column, direction, nulls)
}

// ClickHouse renders ORDER BY terms with native NULLS FIRST / NULLS LAST
// modifiers.
type ClickHouse struct {
}

func (ClickHouse) OrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	return nativeOrderColumn(column, direction, nulls)
}

// MySQL has no NULLS FIRST / NULLS LAST modifiers, so null placement is
// emulated with an IS NULL sort key in front of the column itself.
type MySQL struct {
}

func (MySQL) OrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	nullKey := "(" + column + " IS NULL)"
	if nulls == sortable.NullsFirst {
		nullKey = "(" + column + " IS NOT NULL)"
	}

	return nullKey + ", " + column + " " + string(direction)
}

func nativeOrderColumn(column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	modifier := " NULLS LAST"
	if nulls == sortable.NullsFirst {
		modifier = " NULLS FIRST"
	}

	return column + " " + string(direction) + modifier
}

// Clause renders a complete ORDER BY clause for a single column.
func Clause(builder Builder, column string, direction sortable.Direction, nulls sortable.NullHandling) string {
	return "ORDER BY " + builder.OrderColumn(column, direction, nulls)
}

// ForState renders the ORDER BY term matching a sorter's current state,
// using the active field's null handling.
func ForState[T any, F sortable.Field[T]](builder Builder, sorter *sortable.Sorter[T, F], column string) string {
	field, direction := sorter.State()
	return builder.OrderColumn(column, direction, field.NullHandling())
}
