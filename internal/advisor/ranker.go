// Package advisor implements the context-building and relevance-resolution
// engine: it selects, ranks, and formats catalog data into a bounded prompt
// context and drives the single LLM completion call per chat request.
package advisor

import (
	"sort"
	"strings"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// DefaultMaxPrograms bounds how many ranked programs are injected into
// one prompt context.
const DefaultMaxPrograms = 8

// historyTurns is how many recent user turns contribute to scoring.
const historyTurns = 4

// Turn is one conversation turn as supplied by the caller. The core
// treats history as read-only input.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Ranker scores programs against a user message plus recent history.
type Ranker struct {
	index       *catalog.KeywordIndex
	maxPrograms int
}

// NewRanker creates a ranker over a keyword index. maxPrograms <= 0
// falls back to DefaultMaxPrograms.
func NewRanker(index *catalog.KeywordIndex, maxPrograms int) *Ranker {
	if maxPrograms <= 0 {
		maxPrograms = DefaultMaxPrograms
	}
	return &Ranker{index: index, maxPrograms: maxPrograms}
}

// Rank returns up to maxPrograms program slugs ordered by relevance to
// the message and recent user history. Programs with zero score are
// excluded. Ties break by slug lexical order so ranking is deterministic.
//
// A keyword scores 2 when it appears in the message (whole word or
// substring) and 1 when it appears only in the last few user turns.
// The substring branch is deliberately liberal: "art" matches inside
// "start". Tightening it would change which programs surface.
func (r *Ranker) Rank(message string, history []Turn) []string {
	msgLower := strings.ToLower(message)
	msgTokens := tokenSet(msgLower)
	historyWords := historyWordSet(history)

	type scored struct {
		slug  string
		score int
	}

	var ranked []scored
	for _, slug := range r.index.Slugs() {
		score := 0
		for kw := range r.index.Keywords(slug) {
			switch {
			case msgTokens[kw] || strings.Contains(msgLower, kw):
				score += 2
			case historyWords[kw]:
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{slug: slug, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].slug < ranked[j].slug
	})

	if len(ranked) > r.maxPrograms {
		ranked = ranked[:r.maxPrograms]
	}

	slugs := make([]string, len(ranked))
	for i, s := range ranked {
		slugs[i] = s.slug
	}
	return slugs
}

// tokenSet splits lowered text on whitespace into a membership set.
func tokenSet(lowered string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(lowered) {
		set[tok] = true
	}
	return set
}

// historyWordSet combines the word sets of the last few user turns.
func historyWordSet(history []Turn) map[string]bool {
	var userTurns []Turn
	for _, t := range history {
		if t.Role == "user" {
			userTurns = append(userTurns, t)
		}
	}
	if len(userTurns) > historyTurns {
		userTurns = userTurns[len(userTurns)-historyTurns:]
	}

	words := make(map[string]bool)
	for _, t := range userTurns {
		for _, tok := range strings.Fields(strings.ToLower(t.Content)) {
			words[tok] = true
		}
	}
	return words
}
