package domain

import (
	"cmp"
	"strings"
)

// NaturalCompare orders strings the way a human reads them: runs of digits
// compare by numeric magnitude, everything else byte by byte.
//
//	"item2" < "item10"
//	"10.0.0.9" < "10.0.0.10"
//
// Strings that are equal under natural ordering but differ in bytes (only
// possible through leading zeros, "a01" vs "a1") fall back to byte order so
// the result is a total order.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigits(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}

		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}

	// Whichever string has input left is the longer one.
	if c := cmp.Compare(len(a)-i, len(b)-j); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareDigits compares two digit runs by value without parsing them, so
// runs longer than any integer type still order correctly.
func compareDigits(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		return cmp.Compare(len(x), len(y))
	}
	return strings.Compare(x, y)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
