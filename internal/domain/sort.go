package domain

import (
	"cmp"
	"slices"
)

// CompareFields compares two rows field by field, left to right, using
// NaturalCompare. The first differing field decides. When one row is a
// prefix of the other the shorter one sorts first.
func CompareFields(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := NaturalCompare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// SortRows sorts rows in place by their projected fields. The sort is
// stable: fully equal rows keep their input order.
func SortRows[R Row](rows []R) {
	slices.SortStableFunc(rows, func(x, y R) int {
		return CompareFields(x.Fields(), y.Fields())
	})
}

// SortLexical sorts values in plain byte order. Used for the SAN list.
func SortLexical(values []string) {
	slices.Sort(values)
}

// IsSorted reports whether rows are already in SortRows order.
func IsSorted[R Row](rows []R) bool {
	return slices.IsSortedFunc(rows, func(x, y R) int {
		return CompareFields(x.Fields(), y.Fields())
	})
}
