package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

func TestParseGradedTranscript(t *testing.T) {
	content := `University of Chicago Transcript
CMSC 14100  Introduction to Computer Science I   100  A
CMSC 14200  Introduction to Computer Science II  100  B+
MATH 20300  Analysis in Rn I                     100  In Progress
ECON 20000  The Elements of Economic Analysis I  100  N/A
STAT 23400  Statistical Models and Methods       100  W
PHYS 13100  Mechanics                            100  P
`

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100", "CMSC 14200", "PHYS 13100"}, got.Completed)
	assert.Equal(t, []string{"ECON 20000", "MATH 20300"}, got.InProgress)
}

func TestParseLineWithoutGradeIsInProgress(t *testing.T) {
	content := `CMSC 14100  Intro to CS I  A
CMSC 14200  Intro to CS II
`

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100"}, got.Completed)
	assert.Equal(t, []string{"CMSC 14200"}, got.InProgress)
}

func TestParsePlainCodeListDefaultsToCompleted(t *testing.T) {
	content := "CMSC 14100\nMATH 20300\nECON 20000\n"

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100", "ECON 20000", "MATH 20300"}, got.Completed)
	assert.Empty(t, got.InProgress)
}

func TestParseFirstCodePerLine(t *testing.T) {
	// Line scanning takes the first code on each line; the rest of the
	// line is treated as grade context.
	content := "courses taken: CMSC 14100, MATH 20300 and ECON 20000"

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100"}, got.Completed)
	assert.Empty(t, got.InProgress)
}

func TestParseWithdrawnOnlyFallsBackToFlatExtraction(t *testing.T) {
	// Withdrawn rows are dropped by line scanning, which leaves both
	// sets empty and triggers whole-text extraction.
	content := "CMSC 14100  Intro to CS I  W\n"

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100"}, got.Completed)
	assert.Empty(t, got.InProgress)
}

func TestParseDeduplicates(t *testing.T) {
	content := "CMSC 14100  A\nCMSC 14100  A\n"

	got := Parse(content)
	assert.Equal(t, []string{"CMSC 14100"}, got.Completed)
}

func TestParseNoCodes(t *testing.T) {
	got := Parse("nothing resembling a course code here")
	assert.True(t, got.Empty())
}

func TestParseCaseInsensitiveMarkers(t *testing.T) {
	content := "MATH 20300  in progress\nECON 20000  n/a\n"

	got := Parse(content)
	assert.Empty(t, got.Completed)
	assert.Equal(t, []string{"ECON 20000", "MATH 20300"}, got.InProgress)
}

func TestExtractPDFTextRejectsNonPDF(t *testing.T) {
	_, err := ExtractPDFText([]byte("plain text, no PDF header"))
	require.Error(t, err)
	assert.Equal(t, "Could not read PDF", apperrors.GetUserMessage(err))
}
