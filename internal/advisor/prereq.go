package advisor

import (
	"fmt"
	"strings"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// CheckPrerequisites determines whether the prerequisites of code are
// satisfied given the student's completed and in-progress sets (both
// keyed by normalized codes).
//
// Unknown prerequisites never block: a missing catalog entry or empty
// prerequisite text returns (true, ""). Prerequisite text containing no
// course codes is informational and comes back verbatim with
// satisfied=true. Otherwise in-progress courses do not satisfy, and the
// explanation names every unmet code.
func CheckPrerequisites(store *catalog.Store, code string, completed, inProgress map[string]bool) (bool, string) {
	course, ok := store.Course(code)
	if !ok {
		return true, ""
	}

	prereqText := course.PrerequisiteText()
	if prereqText == "" {
		return true, ""
	}

	codes := catalog.ExtractCodes(prereqText)
	if len(codes) == 0 {
		return true, prereqText
	}

	var unmet []string
	for _, c := range codes {
		switch {
		case completed[c]:
			// Satisfied.
		case inProgress[c]:
			unmet = append(unmet, fmt.Sprintf("%s (in-progress (not yet satisfied))", c))
		default:
			unmet = append(unmet, fmt.Sprintf("%s (not completed)", c))
		}
	}

	if len(unmet) == 0 {
		return true, ""
	}

	return false, "requires " + strings.Join(unmet, ", ")
}

// NewCodeSet normalizes a list of course codes into a membership set.
func NewCodeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		if normalized := catalog.NormalizeCode(c); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
