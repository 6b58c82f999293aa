// Package confslug parses and builds human-friendly conference slugs in the
// form {VENUE}{YEAR}, e.g. QIP2024, QCRYPT2018, TQC2022.
package confslug

import (
	"strconv"
	"strings"
)

// venues lists valid venue prefixes, longest first so QCRYPT matches before
// a shorter prefix could.
var venues = []string{"QCRYPT", "QIP", "TQC"}

// Year bounds used as a sanity check when parsing slugs.
const (
	minYear = 1990
	maxYear = 2100
)

// Parse splits a slug like "QIP2024" into its venue and year. Matching is
// case-insensitive. Returns ok=false for unknown venues, missing or
// non-numeric years, and years outside 1990-2100.
func Parse(slug string) (venue string, year int, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(slug))

	for _, v := range venues {
		if strings.HasPrefix(upper, v) {
			yearStr := upper[len(v):]
			y, err := strconv.Atoi(yearStr)
			if err != nil {
				continue
			}
			if y < minYear || y > maxYear {
				return "", 0, false
			}
			return v, y, true
		}
	}

	return "", 0, false
}

// Make builds a slug from venue and year, uppercasing the venue.
func Make(venue string, year int) string {
	return strings.ToUpper(venue) + strconv.Itoa(year)
}
