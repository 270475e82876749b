package config

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/tableaux-project/sortable"
)

// Row is the dynamic row shape produced by generic data sources: a
// mapping from column paths to untyped values.
type Row = map[string]interface{}

// PartialCompareBy compares two dynamic rows by the column's value,
// coercing both sides to the column's declared type. Missing entries,
// nil values, NaN doubles, zero times and values that cannot be coerced
// have no defined order and are treated as nulls by the sort engine.
//
// Together with SortBy and NullHandling this makes SortSchemaColumn a
// sortable.Field[Row], so a schema column can directly drive a sorter
// over dynamic rows.
func (column SortSchemaColumn) PartialCompareBy(a, b Row) (sortable.Ordering, bool) {
	left, leftExists := a[column.Path]
	right, rightExists := b[column.Path]

	if !leftExists || left == nil || !rightExists || right == nil {
		return sortable.OrderingEqual, false
	}

	switch strings.ToLower(column.Type) {
	case "double":
		x, errX := cast.ToFloat64E(left)
		y, errY := cast.ToFloat64E(right)
		if errX != nil || errY != nil {
			return sortable.OrderingEqual, false
		}
		return sortable.CompareFloats(x, y)
	case "integer", "long":
		x, errX := cast.ToInt64E(left)
		y, errY := cast.ToInt64E(right)
		if errX != nil || errY != nil {
			return sortable.OrderingEqual, false
		}
		return sortable.CompareOrdered(x, y)
	case "boolean":
		x, errX := cast.ToBoolE(left)
		y, errY := cast.ToBoolE(right)
		if errX != nil || errY != nil {
			return sortable.OrderingEqual, false
		}
		return sortable.CompareBools(x, y)
	case "date", "datetime":
		x, errX := cast.ToTimeE(left)
		y, errY := cast.ToTimeE(right)
		if errX != nil || errY != nil {
			return sortable.OrderingEqual, false
		}
		return sortable.CompareTimes(x, y)
	default:
		x, errX := cast.ToStringE(left)
		y, errY := cast.ToStringE(right)
		if errX != nil || errY != nil {
			return sortable.OrderingEqual, false
		}
		return sortable.CompareOrdered(x, y)
	}
}
