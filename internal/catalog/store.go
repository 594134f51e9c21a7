package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Store holds the loaded catalog. It is read-only after construction and
// safe for concurrent readers without locking.
type Store struct {
	programs    map[string]*Program
	courses     map[string]*Course
	departments map[string]bool
}

// Load reads the two scraped JSON documents. A missing file yields an
// empty map for that entity type, not an error: the advisor degrades to
// a no-data disclaimer instead of refusing to start.
func Load(programsPath, coursesPath string) (*Store, error) {
	programs := make(map[string]*Program)
	if err := readJSONFile(programsPath, &programs); err != nil {
		return nil, fmt.Errorf("load programs: %w", err)
	}

	courses := make(map[string]*Course)
	if err := readJSONFile(coursesPath, &courses); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	return New(programs, courses), nil
}

// New builds a store from already-decoded maps. Raw inventory entries
// (no code) are dropped since they cannot be looked up.
func New(programs map[string]*Program, courses map[string]*Course) *Store {
	s := &Store{
		programs:    make(map[string]*Program, len(programs)),
		courses:     make(map[string]*Course, len(courses)),
		departments: make(map[string]bool),
	}

	for slug, p := range programs {
		if p != nil {
			s.programs[slug] = p
		}
	}

	for code, c := range courses {
		if c == nil {
			continue
		}
		normalized := NormalizeCode(code)
		if !IsCanonical(normalized) {
			continue
		}
		s.courses[normalized] = c
		if c.Department != "" {
			s.departments[c.Department] = true
		} else if dept, _, ok := strings.Cut(normalized, " "); ok {
			s.departments[dept] = true
		}
	}

	return s
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Program returns the program for a slug.
func (s *Store) Program(slug string) (*Program, bool) {
	p, ok := s.programs[slug]
	return p, ok
}

// Course returns the inventory entry for a course code. The code is
// normalized before lookup; section codes absent from the inventory
// simply miss.
func (s *Store) Course(code string) (*Course, bool) {
	c, ok := s.courses[NormalizeCode(code)]
	return c, ok
}

// HasDepartment reports whether dept appears in the course inventory.
func (s *Store) HasDepartment(dept string) bool {
	return s.departments[dept]
}

// ProgramCount returns the number of loaded programs.
func (s *Store) ProgramCount() int {
	return len(s.programs)
}

// CourseCount returns the number of addressable inventory courses.
func (s *Store) CourseCount() int {
	return len(s.courses)
}

// Empty reports whether no programs are loaded.
func (s *Store) Empty() bool {
	return len(s.programs) == 0
}

// Slugs returns all program slugs in lexical order.
func (s *Store) Slugs() []string {
	slugs := make([]string, 0, len(s.programs))
	for slug := range s.programs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// ProgramNames returns all program names in alphabetical order.
func (s *Store) ProgramNames() []string {
	names := make([]string, 0, len(s.programs))
	for _, p := range s.programs {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// NameMatch is one hit from SearchCoursesByName.
type NameMatch struct {
	Code string
	Name string
}

// SearchCoursesByName returns up to limit courses whose name contains
// phrase, case-insensitively. Results are ordered by code so identical
// inputs always produce identical output.
func (s *Store) SearchCoursesByName(phrase string, limit int) []NameMatch {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" || limit <= 0 {
		return nil
	}

	codes := make([]string, 0, len(s.courses))
	for code := range s.courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	matches := make([]NameMatch, 0, limit)
	for _, code := range codes {
		c := s.courses[code]
		if c.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), phrase) {
			matches = append(matches, NameMatch{Code: code, Name: c.Name})
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
