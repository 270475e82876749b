// Package sortable implements the sort state behind a sortable table: a
// descriptor model stating how each column may be sorted, a small state
// machine reacting to column header clicks, and a stable comparator sort
// that places values without a defined order (NaN, unknown) first or last
// the way a SQL ORDER BY clause with NULLS FIRST or NULLS LAST does.
//
// A consumer defines a row type T, a field type F enumerating the
// sortable columns of T, and implements Field[T] on F. A Sorter then
// owns the active (field, direction) pair for one view: ToggleField
// reacts to header clicks, SetField restores externally held state,
// State feeds indicator rendering, and Sort orders the rows.
//
// The config sub package loads per-table sort descriptors from JSON
// schema files and derives dynamic fields over map rows. The sqlorder
// sub package renders the same state as a dialect-correct ORDER BY term.
// The web sub package decodes sort state from URL queries and computes
// header indicators.
package sortable
