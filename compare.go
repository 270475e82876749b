package sortable

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Comparison helpers for writing Field implementations. Each helper
// returns the ordering of its two arguments and whether that ordering is
// defined. Values without a defined order (NaN floats, invalid decimals,
// zero times) make a comparison undefined, which the sort engine treats
// as null.

// Orderable covers the primitive types with a total order.
type Orderable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// CompareOrdered compares two totally ordered values. The ordering is
// always defined.
func CompareOrdered[V Orderable](a, b V) (Ordering, bool) {
	switch {
	case a < b:
		return OrderingLess, true
	case a > b:
		return OrderingGreater, true
	}

	return OrderingEqual, true
}

// CompareFloats compares two floats. NaN on either side makes the
// ordering undefined.
func CompareFloats(a, b float64) (Ordering, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return OrderingEqual, false
	}

	switch {
	case a < b:
		return OrderingLess, true
	case a > b:
		return OrderingGreater, true
	}

	return OrderingEqual, true
}

// CompareBools compares two booleans, ordering false before true.
func CompareBools(a, b bool) (Ordering, bool) {
	switch {
	case !a && b:
		return OrderingLess, true
	case a && !b:
		return OrderingGreater, true
	}

	return OrderingEqual, true
}

// CompareTimes compares two points in time. The zero time makes the
// ordering undefined.
func CompareTimes(a, b time.Time) (Ordering, bool) {
	if a.IsZero() || b.IsZero() {
		return OrderingEqual, false
	}

	return Ordering(a.Compare(b)), true
}

// CompareDecimals compares two nullable decimals. An invalid decimal on
// either side makes the ordering undefined.
func CompareDecimals(a, b decimal.NullDecimal) (Ordering, bool) {
	if !a.Valid || !b.Valid {
		return OrderingEqual, false
	}

	return Ordering(a.Decimal.Cmp(b.Decimal)), true
}
