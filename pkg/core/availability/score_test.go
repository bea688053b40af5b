package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

func TestScore_TruthTable(t *testing.T) {
	tests := []struct {
		name        string
		level       db.AvailabilityLevel
		specificity Specificity
		want        int
	}{
		{"usually exact", db.LevelUsually, SpecificityExact, 100},
		{"maybe exact", db.LevelMaybe, SpecificityExact, 60},
		{"usually shift only", db.LevelUsually, SpecificityShiftOnly, 80},
		{"maybe shift only", db.LevelMaybe, SpecificityShiftOnly, 40},
		{"usually none", db.LevelUsually, SpecificityNone, 0},
		{"maybe none", db.LevelMaybe, SpecificityNone, 0},
		{"no level exact", "", SpecificityExact, 0},
		{"no level shift only", "", SpecificityShiftOnly, 0},
		{"no level none", "", SpecificityNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.level, tt.specificity))
		})
	}
}

func TestMatchSpecificity_ExactRecurrenceMatch(t *testing.T) {
	rec := "rec-1"
	a := db.Availability{ShiftID: "shift-1", ShiftRecurrenceID: &rec}

	assert.Equal(t, SpecificityExact, MatchSpecificity(a, "shift-1", "rec-1"))
}

func TestMatchSpecificity_ShiftLevelRow(t *testing.T) {
	a := db.Availability{ShiftID: "shift-1"}

	assert.Equal(t, SpecificityShiftOnly, MatchSpecificity(a, "shift-1", "rec-1"))
}

func TestMatchSpecificity_DifferentRecurrenceDoesNotApply(t *testing.T) {
	rec := "rec-2"
	a := db.Availability{ShiftID: "shift-1", ShiftRecurrenceID: &rec}

	assert.Equal(t, SpecificityNone, MatchSpecificity(a, "shift-1", "rec-1"))
}

func TestMatchSpecificity_DifferentShift(t *testing.T) {
	a := db.Availability{ShiftID: "shift-2"}

	assert.Equal(t, SpecificityNone, MatchSpecificity(a, "shift-1", "rec-1"))
}

func TestRankCandidates_HighestScoreFirst(t *testing.T) {
	candidates := []Candidate{
		{Worker: db.Worker{ID: "w1", FirstName: "Ana", LastName: "Price"}, Score: 40},
		{Worker: db.Worker{ID: "w2", FirstName: "Ben", LastName: "Okafor"}, Score: 100},
		{Worker: db.Worker{ID: "w3", FirstName: "Cal", LastName: "Singh"}, Score: 80},
	}

	RankCandidates(candidates)

	assert.Equal(t, []int{100, 80, 40}, []int{candidates[0].Score, candidates[1].Score, candidates[2].Score})
	assert.Equal(t, "w2", candidates[0].Worker.ID)
}

func TestRankCandidates_TiesBrokenByName(t *testing.T) {
	candidates := []Candidate{
		{Worker: db.Worker{ID: "w1", FirstName: "Zoe", LastName: "Wright"}, Score: 60},
		{Worker: db.Worker{ID: "w2", FirstName: "Ana", LastName: "Adeyemi"}, Score: 60},
		{Worker: db.Worker{ID: "w3", FirstName: "Ben", LastName: "Adeyemi"}, Score: 60},
	}

	RankCandidates(candidates)

	// Same score: last name then first name ascending
	assert.Equal(t, "w2", candidates[0].Worker.ID)
	assert.Equal(t, "w3", candidates[1].Worker.ID)
	assert.Equal(t, "w1", candidates[2].Worker.ID)
}
