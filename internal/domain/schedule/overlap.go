package schedule

import (
	"time"

	"github.com/surfbook/surf-scheduler/internal/models"
)

// DefaultDurationMin applies when a lesson or candidate omits its duration.
const DefaultDurationMin = 90

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back lessons sharing a boundary
// instant do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts returns the ids of every lesson whose interval
// intersects the candidate's. The caller supplies lessons already
// scoped to the candidate's school.
func FindConflicts(start time.Time, durationMin int, lessons []models.Lesson) []string {
	if durationMin <= 0 {
		durationMin = DefaultDurationMin
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	var ids []string
	for _, l := range lessons {
		if Overlaps(start, end, l.StartAt, l.EndAt()) {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
