//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"samhotel-api/internal/infra"
	"samhotel-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomStore struct {
	rooms map[uuid.UUID]*queries.RoomView
}

func (f *fakeRoomStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	if v, ok := f.rooms[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr(pgx.ErrNoRows)
}

func (f *fakeRoomStore) List(context.Context) ([]*queries.RoomView, error) {
	out := make([]*queries.RoomView, 0, len(f.rooms))
	for _, v := range f.rooms {
		out = append(out, v)
	}
	return out, nil
}

type fakeBookingStore struct {
	views []*queries.BookingView
}

func (f *fakeBookingStore) FindByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return nil, infra.WrapRepoErr(pgx.ErrNoRows)
}

func (f *fakeBookingStore) List(_ context.Context, roomID *uuid.UUID) ([]*queries.BookingView, error) {
	if roomID == nil {
		return f.views, nil
	}
	out := make([]*queries.BookingView, 0)
	for _, v := range f.views {
		if v.RoomID == *roomID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) SearchByEmail(_ context.Context, email string) ([]*queries.BookingView, error) {
	out := make([]*queries.BookingView, 0)
	for _, v := range f.views {
		if v.ClientEmail == email {
			out = append(out, v)
		}
	}
	return out, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestCalendar(t *testing.T) {
	roomID := uuid.New()
	otherRoom := uuid.New()

	rooms := &fakeRoomStore{rooms: map[uuid.UUID]*queries.RoomView{
		roomID: {ID: roomID, Name: "Garden View"},
	}}
	bookings := &fakeBookingStore{views: []*queries.BookingView{
		{RoomID: roomID, CheckIn: day("2026-02-10"), CheckOut: day("2026-02-12")},
		{RoomID: roomID, CheckIn: day("2026-02-12"), CheckOut: day("2026-02-13")},
		{RoomID: otherRoom, CheckIn: day("2026-02-20"), CheckOut: day("2026-02-25")},
	}}

	q := queries.NewRoomQueries(rooms, bookings)

	t.Run("expands stays inclusively and deduplicates shared days", func(t *testing.T) {
		view, err := q.Calendar(context.Background(), roomID)
		require.NoError(t, err)

		want := &queries.RoomCalendarView{
			RoomID:   roomID,
			RoomName: "Garden View",
			// The 12th appears once even though it is the first booking's
			// checkout day and the second booking's check-in day.
			BookedDays: []string{"2026-02-10", "2026-02-11", "2026-02-12", "2026-02-13"},
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("calendar mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := q.Calendar(context.Background(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.NotFoundError))
	})
}

func TestSearchByEmail(t *testing.T) {
	roomID := uuid.New()
	bookings := &fakeBookingStore{views: []*queries.BookingView{
		{RoomID: roomID, ClientEmail: "alice@example.com"},
	}}
	q := queries.NewBookingQueries(bookings)

	t.Run("missing email parameter", func(t *testing.T) {
		_, err := q.SearchByEmail(context.Background(), "   ")
		assert.ErrorIs(t, err, queries.ErrEmailFilterRequired)
	})

	t.Run("no matches is reported as not found", func(t *testing.T) {
		_, err := q.SearchByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, queries.ErrNoBookingsForEmail)
	})

	t.Run("matches are returned", func(t *testing.T) {
		views, err := q.SearchByEmail(context.Background(), "Alice@Example.com")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}
