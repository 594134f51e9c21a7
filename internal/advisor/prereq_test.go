package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPrerequisites(t *testing.T) {
	store := testStore()

	tests := []struct {
		name          string
		code          string
		completed     []string
		inProgress    []string
		wantSatisfied bool
		wantText      string
	}{
		{
			name:          "unknown course never blocks",
			code:          "CMSC 99999",
			wantSatisfied: true,
			wantText:      "",
		},
		{
			name:          "no prerequisite text",
			code:          "CMSC 14100",
			wantSatisfied: true,
			wantText:      "",
		},
		{
			name:          "prose prerequisite passes through verbatim",
			code:          "ECON 20000",
			wantSatisfied: true,
			wantText:      "Consent of instructor required",
		},
		{
			name:          "satisfied by completed course",
			code:          "CMSC 14200",
			completed:     []string{"CMSC 14100"},
			wantSatisfied: true,
			wantText:      "",
		},
		{
			name:          "unmet when nothing completed",
			code:          "CMSC 14200",
			wantSatisfied: false,
			wantText:      "requires CMSC 14100 (not completed)",
		},
		{
			name:          "in-progress does not satisfy",
			code:          "CMSC 14200",
			inProgress:    []string{"CMSC 14100"},
			wantSatisfied: false,
			wantText:      "requires CMSC 14100 (in-progress (not yet satisfied))",
		},
		{
			name:          "completed set is normalized before checking",
			code:          "CMSC 14200",
			completed:     []string{"cmsc 14100"},
			wantSatisfied: true,
			wantText:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			satisfied, text := CheckPrerequisites(store, tt.code,
				NewCodeSet(tt.completed), NewCodeSet(tt.inProgress))
			assert.Equal(t, tt.wantSatisfied, satisfied)
			assert.Equal(t, tt.wantText, text)
		})
	}
}
