package catalog

import (
	"regexp"
	"strings"
)

// codeRegex matches a canonical course code anywhere in free text.
// Catalog text sometimes joins the department and number with a
// non-breaking space, so \s covers both after normalization.
var codeRegex = regexp.MustCompile(`\b([A-Z]{2,5})[\s\x{00a0}]+(\d{5})\b`)

// canonicalRegex matches a fully normalized code exactly.
var canonicalRegex = regexp.MustCompile(`^[A-Z]{2,5} \d{5}$`)

// NormalizeCode normalizes a raw catalog course code to canonical
// "DEPT NNNNN" form: non-breaking spaces become regular spaces, leading
// and trailing whitespace is trimmed, interior runs collapse to a
// single space, and letters uppercase. Idempotent.
func NormalizeCode(code string) string {
	code = strings.ReplaceAll(code, " ", " ")
	return strings.ToUpper(strings.Join(strings.Fields(code), " "))
}

// IsCanonical reports whether code is already in canonical "DEPT NNNNN" form.
func IsCanonical(code string) bool {
	return canonicalRegex.MatchString(code)
}

// ExtractCodes returns every canonical-looking course code found in text,
// normalized, in order of appearance, without duplicates.
func ExtractCodes(text string) []string {
	matches := codeRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		code := m[1] + " " + m[2]
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}

// SplitCrossListed splits a requirement-row code on "/" cross-listing
// separators and returns each part normalized. A plain code comes back
// as a single-element slice.
func SplitCrossListed(code string) []string {
	parts := strings.Split(code, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if normalized := NormalizeCode(p); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
