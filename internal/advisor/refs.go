package advisor

import (
	"regexp"
	"strings"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// informalCodeRegex matches informal course mentions: a 2-6 letter
// department token optionally followed by a space or hyphen and 2-5
// digits, e.g. "cs143", "econ 200", "STAT-234".
var informalCodeRegex = regexp.MustCompile(`(?i)\b([a-z]{2,6})[ -]?(\d{2,5})\b`)

// deptAbbrevs maps informal department abbreviations to catalog
// department codes. Tokens not listed resolve to their uppercased form.
var deptAbbrevs = map[string]string{
	"cs":      "CMSC",
	"compsci": "CMSC",
	"cmsc":    "CMSC",
	"econ":    "ECON",
	"math":    "MATH",
	"maths":   "MATH",
	"phys":    "PHYS",
	"stat":    "STAT",
	"stats":   "STAT",
	"bio":     "BIOS",
	"chem":    "CHEM",
	"engl":    "ENGL",
	"hist":    "HIST",
	"phil":    "PHIL",
	"psych":   "PSYC",
	"soc":     "SOCI",
	"socio":   "SOCI",
}

// ResolveInformalCodes scans a message for informal course mentions and
// maps each matched substring to a canonical code. Guarantees:
//   - already-canonical mentions (5 digits, known department) are skipped
//   - every returned code exists in the course inventory
//   - multiple distinct substrings may map to the same code
func ResolveInformalCodes(message string, store *catalog.Store) map[string]string {
	refs := make(map[string]string)

	for _, m := range informalCodeRegex.FindAllStringSubmatch(message, -1) {
		literal := m[0]
		letters := m[1]
		digits := m[2]

		// Already canonical: do not re-resolve "CMSC 14300".
		if len(digits) == 5 && store.HasDepartment(strings.ToUpper(letters)) {
			continue
		}

		dept, ok := deptAbbrevs[strings.ToLower(letters)]
		if !ok {
			dept = strings.ToUpper(letters)
		}

		candidate := dept + " " + padCourseNumber(digits)
		if _, found := store.Course(candidate); found {
			refs[literal] = candidate
		}
	}

	return refs
}

// padCourseNumber extends a short course number to 5 digits with
// trailing zeros: "143" becomes "14300". Catalog numbering puts the
// sequence position in the last two digits, so students drop them.
func padCourseNumber(digits string) string {
	if len(digits) >= 5 {
		return digits
	}
	return digits + strings.Repeat("0", 5-len(digits))
}
