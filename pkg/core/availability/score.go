package availability

import "github.com/eastgate-centre/shift-cover/pkg/db"

// Specificity describes how closely a stated availability record matches the
// shift occurrence being filled
type Specificity string

const (
	// SpecificityExact means the record pins the same recurrence instance
	SpecificityExact Specificity = "exact"
	// SpecificityShiftOnly means the record covers the shift in general
	SpecificityShiftOnly Specificity = "shiftOnly"
	// SpecificityNone means the record does not apply to this occurrence
	SpecificityNone Specificity = "none"
)

// Score ranks a worker's fit to cover a shift occurrence. Exact
// recurrence-instance matches beat shift-level matches at both willingness
// tiers, and a non-matching or absent record scores zero regardless of level.
func Score(level db.AvailabilityLevel, specificity Specificity) int {
	if specificity == SpecificityNone {
		return 0
	}

	switch level {
	case db.LevelUsually:
		if specificity == SpecificityExact {
			return 100
		}
		return 80
	case db.LevelMaybe:
		if specificity == SpecificityExact {
			return 60
		}
		return 40
	default:
		return 0
	}
}

// MatchSpecificity determines how a stored availability row relates to a
// concrete shift occurrence. A row pinned to a different recurrence of the
// same shift does not apply at all.
func MatchSpecificity(a db.Availability, shiftID string, shiftRecurrenceID string) Specificity {
	if a.ShiftID != shiftID {
		return SpecificityNone
	}
	if a.ShiftRecurrenceID == nil {
		return SpecificityShiftOnly
	}
	if *a.ShiftRecurrenceID == shiftRecurrenceID {
		return SpecificityExact
	}
	return SpecificityNone
}
