package commands

import (
	"samhotel-api/internal/domain/booking"
)

// BookingNotifier fans out post-commit side effects: the confirmation email
// and, when a phone number is present, the mobile-money charge. Implementations
// must never block the request path or surface failures to the caller.
type BookingNotifier interface {
	BookingCreated(b *booking.Booking, roomName string)
}

// NopNotifier is used in tests and when notifications are disabled.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(*booking.Booking, string) {}
