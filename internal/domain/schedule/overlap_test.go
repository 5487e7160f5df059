package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/surfbook/surf-scheduler/internal/models"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	dur := 90 * time.Minute

	tests := []struct {
		name   string
		aStart time.Time
		bStart time.Time
		want   bool
	}{
		{
			name:   "identical intervals",
			aStart: at("2025-03-01T09:00:00Z"),
			bStart: at("2025-03-01T09:00:00Z"),
			want:   true,
		},
		{
			name:   "partial overlap",
			aStart: at("2025-03-01T09:00:00Z"),
			bStart: at("2025-03-01T09:30:00Z"),
			want:   true,
		},
		{
			name:   "back to back does not conflict",
			aStart: at("2025-03-01T09:00:00Z"),
			bStart: at("2025-03-01T10:30:00Z"),
			want:   false,
		},
		{
			name:   "disjoint",
			aStart: at("2025-03-01T09:00:00Z"),
			bStart: at("2025-03-01T14:00:00Z"),
			want:   false,
		},
		{
			name:   "one minute overlap at the tail",
			aStart: at("2025-03-01T09:00:00Z"),
			bStart: at("2025-03-01T10:29:00Z"),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aStart.Add(dur), tt.bStart, tt.bStart.Add(dur))
			assert.Equal(t, tt.want, got)
			// symmetric
			got = Overlaps(tt.bStart, tt.bStart.Add(dur), tt.aStart, tt.aStart.Add(dur))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []models.Lesson{
		{ID: "l1", StartAt: at("2025-03-01T09:00:00Z"), DurationMin: 90},
		{ID: "l2", StartAt: at("2025-03-01T14:00:00Z"), DurationMin: 60},
	}

	t.Run("back to back with l1 is clean", func(t *testing.T) {
		ids := FindConflicts(at("2025-03-01T10:30:00Z"), 90, existing)
		assert.Empty(t, ids)
	})

	t.Run("half hour into l1 conflicts", func(t *testing.T) {
		ids := FindConflicts(at("2025-03-01T09:30:00Z"), 90, existing)
		assert.Equal(t, []string{"l1"}, ids)
	})

	t.Run("long candidate hits both", func(t *testing.T) {
		ids := FindConflicts(at("2025-03-01T09:30:00Z"), 6*60, existing)
		assert.Equal(t, []string{"l1", "l2"}, ids)
	})

	t.Run("zero duration falls back to default", func(t *testing.T) {
		// default 90min starting 08:00 ends 09:30, overlapping l1
		ids := FindConflicts(at("2025-03-01T08:00:00Z"), 0, existing)
		assert.Equal(t, []string{"l1"}, ids)
	})
}
