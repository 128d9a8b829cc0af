package scan

import (
	"sort"
	"strings"
)

// NaturalLess reports whether a orders before b when embedded digit runs are
// compared by numeric value instead of byte value, so "page2.png" sorts
// before "page10.png". Text runs compare case-insensitively.
func NaturalLess(a, b string) bool {
	return NaturalCompare(a, b) < 0
}

// NaturalCompare is the three-way form of NaturalLess. The order it induces
// is total: names that differ only in digit padding or letter case still
// compare consistently via a raw fallback.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ia, jb := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigitRuns(a[ia:i], b[jb:j]); c != 0 {
				return c
			}
			continue
		}
		ia, jb := i, j
		for i < len(a) && !isDigit(a[i]) {
			i++
		}
		for j < len(b) && !isDigit(b[j]) {
			j++
		}
		ta := strings.ToLower(a[ia:i])
		tb := strings.ToLower(b[jb:j])
		if ta != tb {
			if ta < tb {
				return -1
			}
			return 1
		}
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// SortNatural sorts names in place by natural order. The sort is stable.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

// compareDigitRuns compares two digit runs by numeric value without parsing,
// so arbitrarily long runs never overflow. Runs of equal value break the tie
// on their raw text, keeping the order total.
func compareDigitRuns(a, b string) int {
	na := strings.TrimLeft(a, "0")
	nb := strings.TrimLeft(b, "0")
	if len(na) != len(nb) {
		if len(na) < len(nb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(na, nb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
