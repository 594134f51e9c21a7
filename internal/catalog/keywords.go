package catalog

import (
	"sort"
	"strings"
)

// programSynonyms maps program slugs to curated informal abbreviations
// students actually type. Slugs not listed here get only name tokens
// and the slug itself.
var programSynonyms = map[string][]string{
	"computerscience":    {"cs", "computer", "compsci", "cmsc"},
	"economics":          {"econ"},
	"mathematics":        {"math", "maths"},
	"physics":            {"phys"},
	"statistics":         {"stats", "stat"},
	"biologicalsciences": {"bio", "biology"},
	"chemistry":          {"chem"},
	"english":            {"english", "engl"},
	"history":            {"hist"},
	"philosophy":         {"phil"},
	"politicalscience":   {"polisci", "poli", "political"},
	"psychology":         {"psych"},
	"sociology":          {"soc", "socio"},
}

// stopWords are dropped from every keyword set. They match almost any
// sentence and would make every program score.
var stopWords = map[string]bool{
	"and": true,
	"of":  true,
	"the": true,
	"in":  true,
}

// KeywordIndex maps each program slug to its lowercase keyword set.
// It is a pure function of the store and must be rebuilt whenever the
// store is reloaded. Never persisted.
type KeywordIndex struct {
	keywords map[string]map[string]bool
}

// BuildKeywordIndex derives the per-program keyword sets: name tokens,
// the slug itself, curated synonyms, minus stop words.
func BuildKeywordIndex(s *Store) *KeywordIndex {
	idx := &KeywordIndex{keywords: make(map[string]map[string]bool, s.ProgramCount())}

	for _, slug := range s.Slugs() {
		p, _ := s.Program(slug)

		set := make(map[string]bool)
		for _, token := range strings.Fields(strings.ToLower(p.Name)) {
			set[token] = true
		}
		set[strings.ToLower(slug)] = true
		for _, syn := range programSynonyms[slug] {
			set[syn] = true
		}
		for word := range stopWords {
			delete(set, word)
		}

		idx.keywords[slug] = set
	}

	return idx
}

// Keywords returns the keyword set for a slug. Nil for unknown slugs.
func (i *KeywordIndex) Keywords(slug string) map[string]bool {
	return i.keywords[slug]
}

// Slugs returns all indexed slugs in lexical order.
func (i *KeywordIndex) Slugs() []string {
	slugs := make([]string, 0, len(i.keywords))
	for slug := range i.keywords {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
