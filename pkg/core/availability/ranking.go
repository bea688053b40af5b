package availability

import (
	"sort"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// Candidate pairs a worker with their availability score for one shift occurrence
type Candidate struct {
	Worker db.Worker
	Score  int
}

// RankCandidates sorts candidates in place, highest score first. Ties are
// broken by worker name ascending (then ID) so the ordering is stable across
// runs.
func RankCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		nameI := candidates[i].Worker.LastName + " " + candidates[i].Worker.FirstName
		nameJ := candidates[j].Worker.LastName + " " + candidates[j].Worker.FirstName
		if nameI != nameJ {
			return nameI < nameJ
		}
		return candidates[i].Worker.ID < candidates[j].Worker.ID
	})
}
