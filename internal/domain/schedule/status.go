package schedule

import (
	"time"

	"github.com/surfbook/surf-scheduler/internal/httperr"
	"github.com/surfbook/surf-scheduler/internal/models"
)

// ===============================
// Booking status
// ===============================

type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

func InitialStatus() BookingStatus {
	return StatusBooked
}

// ===============================
// Transitions
// ===============================

// Cancel moves an active booking to cancelled. Cancelling a booking
// that is not active is a not-found condition for the caller, not a
// server fault.
func Cancel(b *models.Booking, now time.Time) error {
	if BookingStatus(b.Status) != StatusBooked {
		return httperr.ErrNotFound("not_booked", "Not booked.")
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Rebook revives a cancelled booking. Rebooking an active booking is
// a no-op so that Book stays idempotent.
func Rebook(b *models.Booking) {
	if BookingStatus(b.Status) == StatusBooked {
		return
	}

	b.Status = string(StatusBooked)
	b.CancelledAt = nil
}
