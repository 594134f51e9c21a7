package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	programs := map[string]*Program{
		"computerscience": {
			Name:        "Computer Science",
			Description: "The computer science major trains students in algorithms and systems.",
			Requirements: []Section{
				{
					Header: "Major Requirements",
					Courses: []CourseRef{
						{Code: "CMSC 14300", Title: "Systems Programming I", Units: "100"},
						{Code: "MATH 20250", Title: "Abstract Linear Algebra", Units: "100"},
					},
				},
			},
		},
		"mathematics": {
			Name: "Mathematics",
			Requirements: []Section{
				{
					Courses: []CourseRef{
						{Code: "MATH 20250", Title: "Abstract Linear Algebra", Units: "100"},
					},
				},
			},
		},
	}
	courses := map[string]*Course{
		"CMSC 14300": {
			Code: "CMSC 14300", Department: "CMSC", Number: "14300",
			Name: "Systems Programming I", Units: 100,
			Description: "Covers the C programming language and systems-level work.",
			Details:     CourseDetails{Prerequisites: "CMSC 14200 or CMSC 15200"},
		},
		"MATH 20250": {
			Code: "MATH 20250", Department: "MATH", Number: "20250",
			Name: "Abstract Linear Algebra", Units: 100,
			Description: "A rigorous treatment of linear algebra.",
		},
	}
	return New(programs, courses)
}

func TestLoadMissingFilesYieldEmptyStore(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(filepath.Join(dir, "programs.json"), filepath.Join(dir, "courses.json"))
	require.NoError(t, err)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.CourseCount())
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	programsPath := filepath.Join(dir, "programs.json")
	coursesPath := filepath.Join(dir, "courses.json")

	programs := map[string]*Program{
		"economics": {Name: "Economics", Description: "The study of scarcity."},
	}
	courses := map[string]*Course{
		"ECON 20000": {Code: "ECON 20000", Department: "ECON", Name: "The Elements of Economic Analysis I", Units: 100},
		// Raw entry with no code must be dropped from lookups.
		"": {RawTitle: "ECON 29700. Reading and Research. Variable Units."},
	}

	writeJSON(t, programsPath, programs)
	writeJSON(t, coursesPath, courses)

	s, err := Load(programsPath, coursesPath)
	require.NoError(t, err)

	assert.Equal(t, 1, s.ProgramCount())
	assert.Equal(t, 1, s.CourseCount())

	c, ok := s.Course("ECON 20000")
	require.True(t, ok)
	assert.Equal(t, "The Elements of Economic Analysis I", c.Name)
	assert.True(t, s.HasDepartment("ECON"))
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	programsPath := filepath.Join(dir, "programs.json")
	require.NoError(t, os.WriteFile(programsPath, []byte("{not json"), 0o644))

	_, err := Load(programsPath, filepath.Join(dir, "courses.json"))
	assert.Error(t, err)
}

func TestCourseLookupNormalizes(t *testing.T) {
	s := testStore()

	c, ok := s.Course("CMSC 14300")
	require.True(t, ok)
	assert.Equal(t, "Systems Programming I", c.Name)

	_, ok = s.Course("CMSC 99999")
	assert.False(t, ok)
}

func TestProgramNamesSorted(t *testing.T) {
	s := testStore()
	assert.Equal(t, []string{"Computer Science", "Mathematics"}, s.ProgramNames())
	assert.Equal(t, []string{"computerscience", "mathematics"}, s.Slugs())
}

func TestSearchCoursesByName(t *testing.T) {
	s := testStore()

	hits := s.SearchCoursesByName("linear algebra", 5)
	require.Len(t, hits, 1)
	assert.Equal(t, "MATH 20250", hits[0].Code)

	assert.Empty(t, s.SearchCoursesByName("linear algebra", 0))
	assert.Empty(t, s.SearchCoursesByName("   ", 5))
	assert.Empty(t, s.SearchCoursesByName("quantum basket weaving", 5))

	// Case-insensitive.
	assert.Len(t, s.SearchCoursesByName("SYSTEMS", 5), 1)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
