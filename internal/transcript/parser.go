// Package transcript extracts course codes and completion status from
// uploaded transcript files (.txt, .csv, .pdf).
package transcript

import (
	"regexp"
	"sort"
	"strings"
)

// Result splits the extracted course codes by completion status. Both
// lists are sorted and duplicate-free.
type Result struct {
	Completed  []string `json:"completed"`
	InProgress []string `json:"in_progress"`
}

// Empty reports whether no course codes were found.
func (r *Result) Empty() bool {
	return len(r.Completed) == 0 && len(r.InProgress) == 0
}

var (
	courseCodeRegex  = regexp.MustCompile(`\b([A-Z]{2,5})\s+(\d{5})\b`)
	inProgressRegex  = regexp.MustCompile(`(?i)\bIn\s+Progress\b`)
	noGradeRegex     = regexp.MustCompile(`(?i)\bN/?A\b`)
	letterGradeRegex = regexp.MustCompile(`\b[A-D][+-]?\b`)
	passGradeRegex   = regexp.MustCompile(`\b[PS]\b`)
	withdrawnRegex   = regexp.MustCompile(`\bW\b`)
)

// Parse extracts course codes with status from transcript text.
//
// Each line is scanned for a course code; the rest of the line decides
// the status. "In Progress" and "N/A" mark in-progress, a letter grade
// (A+ through D, plus P and S) marks completed, and W rows are dropped.
// A code with no grade info on its line counts as in-progress.
//
// Two fallbacks keep plain code lists working: if no line carried any
// grade info, every code is treated as completed; if line scanning
// found nothing at all, codes are extracted from the whole text and
// treated as completed.
func Parse(content string) *Result {
	completed := make(map[string]bool)
	inProgress := make(map[string]bool)
	hasGradeInfo := false

	for _, line := range strings.Split(content, "\n") {
		loc := courseCodeRegex.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		code := line[loc[2]:loc[3]] + " " + line[loc[4]:loc[5]]
		rest := line[loc[1]:]

		switch {
		case inProgressRegex.MatchString(rest):
			inProgress[code] = true
			hasGradeInfo = true
		case noGradeRegex.MatchString(rest):
			inProgress[code] = true
			hasGradeInfo = true
		case letterGradeRegex.MatchString(rest) || passGradeRegex.MatchString(rest):
			completed[code] = true
			hasGradeInfo = true
		case withdrawnRegex.MatchString(rest):
			// Withdrawn, don't count.
			hasGradeInfo = true
		default:
			inProgress[code] = true
		}
	}

	// Plain code list without grades: everything counts as completed.
	if !hasGradeInfo && (len(completed) > 0 || len(inProgress) > 0) {
		for code := range inProgress {
			completed[code] = true
		}
		return &Result{Completed: sortedKeys(completed), InProgress: []string{}}
	}

	// Line scanning found nothing: extract codes from the whole text.
	if len(completed) == 0 && len(inProgress) == 0 {
		for _, m := range courseCodeRegex.FindAllStringSubmatch(content, -1) {
			completed[m[1]+" "+m[2]] = true
		}
		return &Result{Completed: sortedKeys(completed), InProgress: []string{}}
	}

	return &Result{
		Completed:  sortedKeys(completed),
		InProgress: sortedKeys(inProgress),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
