package availability

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// SuggestStore defines the database operations needed to rank candidates
type SuggestStore interface {
	ListAvailabilityForShift(ctx context.Context, shiftID string) ([]db.Availability, error)
	GetWorker(ctx context.Context, id string) (*db.Worker, error)
}

// SuggestSubstitutes ranks workers by their fit to cover one occurrence of a
// shift. A worker with both a shift-level and a recurrence-specific row is
// scored on their best match. Workers scoring zero are not candidates and are
// dropped; the rest come back highest score first, ties by worker name.
func SuggestSubstitutes(
	ctx context.Context,
	store SuggestStore,
	logger *zap.Logger,
	shiftID string,
	shiftRecurrenceID string,
	excludeWorkerID string,
) ([]Candidate, error) {
	logger.Debug("Ranking substitute candidates",
		zap.String("shift_id", shiftID),
		zap.String("shift_recurrence_id", shiftRecurrenceID))

	rows, err := store.ListAvailabilityForShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability for shift: %w", err)
	}

	// Best score per worker across their rows for this shift
	bestScores := make(map[string]int)
	for _, row := range rows {
		if row.WorkerID == excludeWorkerID {
			continue
		}
		score := Score(row.Level, MatchSpecificity(row, shiftID, shiftRecurrenceID))
		if score > bestScores[row.WorkerID] {
			bestScores[row.WorkerID] = score
		}
	}

	candidates := make([]Candidate, 0, len(bestScores))
	for workerID, score := range bestScores {
		if score == 0 {
			continue
		}

		worker, err := store.GetWorker(ctx, workerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load worker %s: %w", workerID, err)
		}
		if worker == nil {
			logger.Warn("Availability row references unknown worker", zap.String("worker_id", workerID))
			continue
		}

		candidates = append(candidates, Candidate{Worker: *worker, Score: score})
	}

	RankCandidates(candidates)

	logger.Info("Ranked substitute candidates",
		zap.String("shift_id", shiftID),
		zap.Int("count", len(candidates)))

	return candidates, nil
}
