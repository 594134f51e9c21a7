package advisor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// Bounds on the assembled context so the prompt stays a manageable size.
const (
	maxProgramDescChars = 500
	maxCourseDescChars  = 200
	maxCourseDetails    = 25
	maxSearchPhrases    = 3
	maxHitsPerPhrase    = 5
	maxSearchResults    = 10
)

var (
	quotedPhraseRegex = regexp.MustCompile(`"([^"]+)"`)
	cuePhraseRegex    = regexp.MustCompile(`(?i)\b(?:such as|like|called|named|about)\s+([^.,!?;:"]+)`)
)

// Builder assembles the catalog-derived text block injected into the
// LLM prompt. It is a pure function of its inputs and the immutable
// store: identical inputs always produce byte-identical output.
type Builder struct {
	store  *catalog.Store
	ranker *Ranker
}

// NewBuilder creates a context builder over a store and ranker.
func NewBuilder(store *catalog.Store, ranker *Ranker) *Builder {
	return &Builder{store: store, ranker: ranker}
}

// Build assembles the context for one request and reports how many
// programs were ranked into it. An empty catalog yields "".
func (b *Builder) Build(message string, completed, inProgress []string, history []Turn) (string, int) {
	if b.store.Empty() {
		return "", 0
	}

	ranked := b.ranker.Rank(message, history)
	if len(ranked) == 0 {
		return b.programListFallback(), 0
	}

	completedSet := NewCodeSet(completed)
	inProgressSet := NewCodeSet(inProgress)

	var parts []string

	// tracked maps each emitted code to the program names it appeared
	// under, in first-seen order per code.
	tracked := make(map[string][]string)

	for _, slug := range ranked {
		parts = append(parts, b.programBlock(slug, completedSet, inProgressSet, tracked))
	}

	if len(ranked) >= 2 {
		if block := b.overlapBlock(tracked, completedSet, inProgressSet); block != "" {
			parts = append(parts, block)
		}
	}

	if block := b.prereqWarningsBlock(tracked, completedSet, inProgressSet); block != "" {
		parts = append(parts, block)
	}

	if block := b.courseDetailsBlock(tracked); block != "" {
		parts = append(parts, block)
	}

	if block := b.resolvedReferencesBlock(message, tracked); block != "" {
		parts = append(parts, block)
	}

	if block := b.nameSearchBlock(message, tracked); block != "" {
		parts = append(parts, block)
	}

	return strings.Join(parts, ""), len(ranked)
}

// programListFallback lists every program name alphabetically when no
// program matched, so the model can prompt the student to narrow down.
func (b *Builder) programListFallback() string {
	var sb strings.Builder
	sb.WriteString("\n\nAvailable programs in the catalog:\n")
	for _, name := range b.store.ProgramNames() {
		sb.WriteString("- " + name + "\n")
	}
	sb.WriteString("\n(Ask about a specific program for detailed requirements.)")
	return sb.String()
}

// programBlock renders one ranked program: name, truncated description,
// and its requirement sections verbatim. Every emitted code is recorded
// in tracked together with the program name it appeared under.
func (b *Builder) programBlock(slug string, completed, inProgress map[string]bool, tracked map[string][]string) string {
	prog, ok := b.store.Program(slug)
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n## " + prog.Name + "\n")
	if prog.Description != "" {
		sb.WriteString(truncate(prog.Description, maxProgramDescChars) + "\n")
	}

	if len(prog.Requirements) == 0 {
		return sb.String()
	}

	sb.WriteString("\n### Requirements:\n")
	for _, section := range prog.Requirements {
		if section.Header != "" {
			sb.WriteString("\n**" + section.Header + "**\n")
		}
		for _, ref := range section.Courses {
			prefix := ""
			if ref.OrAlternative {
				prefix = "  OR "
			} else if ref.ElectiveOption {
				prefix = "  - "
			}

			units := ""
			if ref.Units != "" {
				units = " (" + ref.Units + ")"
			}

			codes := catalog.SplitCrossListed(ref.Code)
			marker := statusMarker(codes, completed, inProgress)

			sb.WriteString(fmt.Sprintf("%s%s: %s%s%s\n", prefix, ref.Code, ref.Title, units, marker))

			for _, code := range codes {
				if !contains(tracked[code], prog.Name) {
					tracked[code] = append(tracked[code], prog.Name)
				}
			}
		}
	}

	return sb.String()
}

// overlapBlock lists tracked codes that appeared under at least two
// distinct program names, so the model can point out double-counting
// opportunities for double majors.
func (b *Builder) overlapBlock(tracked map[string][]string, completed, inProgress map[string]bool) string {
	var overlapping []string
	for code, programs := range tracked {
		if len(programs) >= 2 {
			overlapping = append(overlapping, code)
		}
	}
	if len(overlapping) == 0 {
		return ""
	}
	sort.Strings(overlapping)

	var sb strings.Builder
	sb.WriteString("\n\n### Cross-Program Overlap:\nThese courses count toward more than one of the programs above:\n")
	for _, code := range overlapping {
		programs := append([]string(nil), tracked[code]...)
		sort.Strings(programs)

		line := "- " + code
		if c, ok := b.store.Course(code); ok && c.Name != "" {
			line += ": " + c.Name
		}
		line += " (counts toward: " + strings.Join(programs, ", ") + ")"
		line += statusMarker([]string{code}, completed, inProgress)
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// prereqWarningsBlock collects unsatisfied-prerequisite explanations for
// tracked codes the student has neither completed nor started.
func (b *Builder) prereqWarningsBlock(tracked map[string][]string, completed, inProgress map[string]bool) string {
	var warnings []string
	for _, code := range sortedCodes(tracked) {
		if completed[code] || inProgress[code] {
			continue
		}
		if satisfied, explanation := CheckPrerequisites(b.store, code, completed, inProgress); !satisfied {
			warnings = append(warnings, "- "+code+": "+explanation)
		}
	}
	if len(warnings) == 0 {
		return ""
	}
	return "\n\n### Prerequisite Warnings:\n" + strings.Join(warnings, "\n") + "\n"
}

// courseDetailsBlock emits inventory details for up to maxCourseDetails
// tracked codes. Codes missing from the inventory are silently skipped.
func (b *Builder) courseDetailsBlock(tracked map[string][]string) string {
	var details []string
	for _, code := range sortedCodes(tracked) {
		if len(details) == maxCourseDetails {
			break
		}
		if c, ok := b.store.Course(code); ok {
			details = append(details, b.courseDetail(code, c))
		}
	}
	if len(details) == 0 {
		return ""
	}
	return "\n\n### Course Details:\n" + strings.Join(details, "\n")
}

// courseDetail renders one inventory entry. The terms-offered field is
// only surfaced when it swallowed the prerequisite sentence.
func (b *Builder) courseDetail(code string, c *catalog.Course) string {
	detail := fmt.Sprintf("\n**%s - %s** (%d units)", code, c.Name, c.Units)
	if c.Description != "" {
		detail += "\n" + truncate(c.Description, maxCourseDescChars)
	}
	if c.Details.Prerequisites != "" {
		detail += "\nPrerequisites: " + c.Details.Prerequisites
	} else if strings.Contains(c.Details.TermsOffered, "Prerequisite") {
		detail += "\nTerms: " + c.Details.TermsOffered
	}
	return detail
}

// resolvedReferencesBlock maps informal mentions like "cs143" to their
// canonical codes, appending a detail block inline for codes the
// program sections did not already surface.
func (b *Builder) resolvedReferencesBlock(message string, tracked map[string][]string) string {
	refs := ResolveInformalCodes(message, b.store)
	if len(refs) == 0 {
		return ""
	}

	literals := make([]string, 0, len(refs))
	for literal := range refs {
		literals = append(literals, literal)
	}
	sort.Strings(literals)

	var sb strings.Builder
	sb.WriteString("\n\n### Resolved Course References:\n")
	for _, literal := range literals {
		code := refs[literal]
		c, ok := b.store.Course(code)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %q refers to %s: %s\n", literal, code, c.Name))
		if _, seen := tracked[code]; !seen {
			tracked[code] = []string{}
			sb.WriteString(b.courseDetail(code, c) + "\n")
		}
	}
	return sb.String()
}

// nameSearchBlock searches course names for quoted substrings and
// phrases following cue words, surfacing codes nothing else mentioned.
func (b *Builder) nameSearchBlock(message string, tracked map[string][]string) string {
	phrases := extractSearchPhrases(message)
	if len(phrases) == 0 {
		return ""
	}

	var lines []string
	for _, phrase := range phrases {
		for _, hit := range b.store.SearchCoursesByName(phrase, maxHitsPerPhrase) {
			if _, seen := tracked[hit.Code]; seen {
				continue
			}
			tracked[hit.Code] = []string{}
			lines = append(lines, "- "+hit.Code+": "+hit.Name)
			if len(lines) == maxSearchResults {
				break
			}
		}
		if len(lines) == maxSearchResults {
			break
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n\n### Course Name Search Results:\n" + strings.Join(lines, "\n") + "\n"
}

// extractSearchPhrases pulls quoted substrings and cue-word phrases
// from the message, deduplicated, capped at maxSearchPhrases.
func extractSearchPhrases(message string) []string {
	var phrases []string
	seen := make(map[string]bool)

	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return
		}
		key := strings.ToLower(phrase)
		if !seen[key] && len(phrases) < maxSearchPhrases {
			seen[key] = true
			phrases = append(phrases, phrase)
		}
	}

	for _, m := range quotedPhraseRegex.FindAllStringSubmatch(message, -1) {
		add(m[1])
	}
	for _, m := range cuePhraseRegex.FindAllStringSubmatch(message, -1) {
		add(m[1])
	}

	return phrases
}

// statusMarker returns the transcript status suffix for a course line.
// Cross-listed rows count as completed or in-progress when any of their
// codes is.
func statusMarker(codes []string, completed, inProgress map[string]bool) string {
	for _, code := range codes {
		if completed[code] {
			return " [COMPLETED]"
		}
	}
	for _, code := range codes {
		if inProgress[code] {
			return " [IN PROGRESS]"
		}
	}
	return ""
}

// sortedCodes returns tracked codes in lexical order for deterministic
// block assembly.
func sortedCodes(tracked map[string][]string) []string {
	codes := make([]string, 0, len(tracked))
	for code := range tracked {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
