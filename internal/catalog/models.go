// Package catalog defines the scraped catalog data model and the in-memory
// store the advisor reads from. Programs and courses are loaded once from
// JSON documents at startup and are immutable for the process lifetime,
// which makes the store safe to share across concurrent requests.
package catalog

import "strings"

// Program is a major or minor course of study with structured requirements.
type Program struct {
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	Requirements []Section `json:"requirements"`
	CourseCount  int       `json:"course_count,omitempty"`
}

// Section groups requirement rows under an optional header
// (e.g. "Major Requirements" or "Electives").
type Section struct {
	Header  string      `json:"header,omitempty"`
	Courses []CourseRef `json:"courses"`
}

// CourseRef is one row of a requirement table. Code is raw catalog text:
// it may contain a non-breaking space or a "/"-joined cross-listing.
type CourseRef struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	Units          string `json:"units,omitempty"`
	OrAlternative  bool   `json:"or_alternative,omitempty"`
	ElectiveOption bool   `json:"elective_option,omitempty"`
}

// Course is a catalog inventory entry keyed by canonical code.
// Entries whose title could not be parsed carry only RawTitle and no code;
// they are unaddressable and excluded from lookups.
type Course struct {
	Code        string        `json:"code,omitempty"`
	RawTitle    string        `json:"raw_title,omitempty"`
	Department  string        `json:"department,omitempty"`
	Number      string        `json:"number,omitempty"`
	Name        string        `json:"name,omitempty"`
	Units       int           `json:"units,omitempty"`
	Description string        `json:"description"`
	Details     CourseDetails `json:"details"`
}

// CourseDetails carries the free-text detail fields scraped from a
// courseblock. All fields are optional.
type CourseDetails struct {
	Prerequisites     string `json:"prerequisites,omitempty"`
	TermsOffered      string `json:"terms_offered,omitempty"`
	Instructors       string `json:"instructors,omitempty"`
	EquivalentCourses string `json:"equivalent_courses,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// PrerequisiteText returns the course's prerequisite text. When the
// dedicated field is empty it scans the terms-offered and instructors
// fields, which sometimes swallow the prerequisite sentence on malformed
// catalog pages. Returns "" when nothing prerequisite-like is found.
func (c *Course) PrerequisiteText() string {
	if c == nil {
		return ""
	}
	if c.Details.Prerequisites != "" {
		return c.Details.Prerequisites
	}
	for _, field := range []string{c.Details.TermsOffered, c.Details.Instructors} {
		if text := extractPrereqSentence(field); text != "" {
			return text
		}
	}
	return ""
}

// extractPrereqSentence finds a substring beginning with "Prerequisite" and
// returns the remainder with the marker and its colon stripped.
func extractPrereqSentence(field string) string {
	idx := strings.Index(field, "Prerequisite")
	if idx < 0 {
		return ""
	}
	rest := field[idx:]
	if colon := strings.Index(rest, ":"); colon >= 0 && colon < 20 {
		rest = rest[colon+1:]
	} else {
		rest = strings.TrimPrefix(rest, "Prerequisite(s)")
		rest = strings.TrimPrefix(rest, "Prerequisites")
		rest = strings.TrimPrefix(rest, "Prerequisite")
	}
	return strings.TrimSpace(rest)
}
