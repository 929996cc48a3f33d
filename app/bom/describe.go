package bom

import "strings"

// Describe derives the JLCPCB comment field from whatever the source row
// offers, in order of preference:
//
//  1. value and part number together,
//  2. value plus a component-type suffix guessed from the leading character
//     of the first reference (per the suffixes map),
//  3. the raw reference list, unexpanded.
func Describe(value, partNumber, reference string, suffixes map[string]string) string {
	if value != "" && partNumber != "" {
		return value + " " + partNumber
	}

	if value != "" {
		first := reference
		if i := strings.IndexByte(reference, ','); i >= 0 {
			first = reference[:i]
		}
		first = strings.TrimSpace(first)

		if first != "" {
			if suffix, ok := suffixes[strings.ToUpper(first[:1])]; ok {
				return value + " " + suffix
			}
		}
		return value
	}

	return reference
}
