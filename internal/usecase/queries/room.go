package queries

import (
	"context"
	"errors"
	"sort"

	"samhotel-api/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	ByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	// Calendar expands every booking of the room into its occupied days,
	// including both the check-in and check-out dates.
	Calendar(ctx context.Context, roomID uuid.UUID) (*RoomCalendarView, error)
}

type roomQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
}

func NewRoomQueries(rooms RoomReadStore, bookings BookingReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, bookings: bookings}
}

func (q *roomQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.rooms.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.rooms.List(ctx)
}

func (q *roomQueriesImpl) Calendar(ctx context.Context, roomID uuid.UUID) (*RoomCalendarView, error) {
	roomView, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	views, err := q.bookings.List(ctx, &roomID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, v := range views {
		stay, err := booking.NewStay(v.CheckIn, v.CheckOut)
		if err != nil {
			continue
		}
		for _, day := range stay.Days() {
			seen[day.Format("2006-01-02")] = struct{}{}
		}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)

	return &RoomCalendarView{
		RoomID:     roomView.ID,
		RoomName:   roomView.Name,
		BookedDays: days,
	}, nil
}
