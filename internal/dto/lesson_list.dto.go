package dto

import "time"

type LessonListDTO struct {
	ID          string    `json:"id"`
	SchoolID    string    `json:"school_id"`
	StartAt     time.Time `json:"start_at"`
	DurationMin int       `json:"duration_min"`
	Difficulty  string    `json:"difficulty"`
	Place       string    `json:"place"`
	Capacity    *int      `json:"capacity,omitempty"`
	Coaches     []string  `json:"coaches"`
	BookedCount int       `json:"booked_count"`
	SpotsLeft   *int      `json:"spots_left,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LessonCreatedDTO struct {
	ID          string    `json:"id"`
	SchoolID    string    `json:"school_id"`
	StartAt     time.Time `json:"start_at"`
	DurationMin int       `json:"duration_min"`
	Difficulty  string    `json:"difficulty"`
	Place       string    `json:"place"`
	Capacity    *int      `json:"capacity,omitempty"`
	CoachIDs    []string  `json:"coach_ids"`

	// Advisory: ids of same-school lessons this one overlaps.
	// Creation is never rejected on overlap.
	Conflicts []string `json:"conflicts"`
}

type ConflictCheckDTO struct {
	Conflict       bool     `json:"conflict"`
	ConflictingIDs []string `json:"conflicting_ids"`
}

type BookingDTO struct {
	LessonID    string `json:"lesson_id"`
	Status      string `json:"status"`
	BookedCount int    `json:"booked_count"`
	SpotsLeft   *int   `json:"spots_left,omitempty"`
}
