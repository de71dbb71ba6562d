package queries

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrNoBookingsForEmail  = errors.New("no bookings found for that email")
	ErrEmailFilterRequired = errors.New("email query parameter is required")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns bookings ordered by check-in ascending; roomID narrows the
	// result to one room when non-nil.
	List(ctx context.Context, roomID *uuid.UUID) ([]*BookingView, error)
	SearchByEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type BookingQueries interface {
	ByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, roomID *uuid.UUID) ([]*BookingView, error)
	SearchByEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) List(ctx context.Context, roomID *uuid.UUID) ([]*BookingView, error) {
	return q.store.List(ctx, roomID)
}

// SearchByEmail matches the client email case-insensitively; an empty result
// is reported as not found so the handler can surface it.
func (q *bookingQueriesImpl) SearchByEmail(ctx context.Context, email string) ([]*BookingView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailFilterRequired
	}
	views, err := q.store.SearchByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoBookingsForEmail
	}
	return views, nil
}
