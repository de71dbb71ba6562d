//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/domain/room"
	"samhotel-api/internal/infra/repository"
	"samhotel-api/internal/infra/uow"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type BookingRepositorySuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool
	uow       shared.UnitOfWork
	clock     *clock.MockClock
	commands  commands.BookingCommands
}

func TestBookingRepositorySuite(t *testing.T) {
	suite.Run(t, new(BookingRepositorySuite))
}

func (s *BookingRepositorySuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_db",
		},
		WaitingFor: wait.ForListeningPort(nat.Port("5432/tcp")).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	s.Require().NoError(err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/test_db?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	migration, err := os.ReadFile("../../../db/migrations/0001_init.sql")
	s.Require().NoError(err)
	_, err = pool.Exec(ctx, string(migration))
	s.Require().NoError(err)

	s.uow = uow.NewPostgresUoW(pool)
	s.clock = clock.NewMockClock(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.uow, commands.NopNotifier{}, s.clock)
}

func (s *BookingRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *BookingRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE bookings, rooms CASCADE`)
	s.Require().NoError(err)
}

func (s *BookingRepositorySuite) createRoom(rate string) uuid.UUID {
	amount, err := booking.ParseAmount(rate)
	s.Require().NoError(err)
	r, err := room.NewRoom("Suite "+uuid.NewString()[:8], "", amount, nil)
	s.Require().NoError(err)

	err = s.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, r)
	})
	s.Require().NoError(err)
	return r.ID()
}

func (s *BookingRepositorySuite) createInput(roomID uuid.UUID, in, out string, paid string) commands.CreateBookingInput {
	parse := func(v string) time.Time {
		d, err := time.Parse("2006-01-02", v)
		s.Require().NoError(err)
		return d
	}
	return commands.CreateBookingInput{
		RoomID:      roomID,
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		CheckIn:     parse(in),
		CheckOut:    parse(out),
		Adults:      1,
		MealPlan:    "none",
		AmountPaid:  paid,
	}
}

func (s *BookingRepositorySuite) roomAvailable(roomID uuid.UUID) bool {
	var available bool
	err := s.pool.QueryRow(context.Background(),
		`SELECT available FROM rooms WHERE id = $1`, roomID).Scan(&available)
	s.Require().NoError(err)
	return available
}

func (s *BookingRepositorySuite) TestConcurrentOverlappingCreates() {
	roomID := s.createRoom("100.00")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.commands.Create(context.Background(),
				s.createInput(roomID, "2026-02-10", "2026-02-12", "200.00"))
		}(i)
	}
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, commands.ErrDatesAlreadyBooked):
			conflicts++
		}
	}
	s.Equal(1, succeeded, "exactly one of the racing requests may commit")
	s.GreaterOrEqual(conflicts, 1)

	var count int
	err := s.pool.QueryRow(context.Background(), `SELECT count(*) FROM bookings`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *BookingRepositorySuite) TestBackToBackStaysAreAccepted() {
	roomID := s.createRoom("100.00")

	_, err := s.commands.Create(context.Background(),
		s.createInput(roomID, "2026-02-10", "2026-02-12", "200.00"))
	s.Require().NoError(err)

	_, err = s.commands.Create(context.Background(),
		s.createInput(roomID, "2026-02-12", "2026-02-14", "200.00"))
	s.Require().NoError(err, "a stay starting on another stay's checkout day must be accepted")

	_, err = s.commands.Create(context.Background(),
		s.createInput(roomID, "2026-02-11", "2026-02-13", "200.00"))
	s.Require().True(errors.Is(err, commands.ErrDatesAlreadyBooked))
}

func (s *BookingRepositorySuite) TestAvailabilityProjection() {
	roomID := s.createRoom("100.00")
	s.True(s.roomAvailable(roomID))

	view, err := s.commands.Create(context.Background(),
		s.createInput(roomID, "2026-02-10", "2026-02-12", "200.00"))
	s.Require().NoError(err)
	s.False(s.roomAvailable(roomID), "a future booking makes the room unavailable")

	err = s.commands.Delete(context.Background(), view.ID)
	s.Require().NoError(err)
	s.True(s.roomAvailable(roomID), "cancelling the only booking restores availability")
}

func (s *BookingRepositorySuite) TestPastBookingsDoNotBlockAvailability() {
	roomID := s.createRoom("100.00")

	// Insert a finished stay directly; the clock's today is 2026-01-05.
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO bookings (id, room_id, client_name, client_email, check_in, check_out, adults, children, meal_plan, total_cents, paid_cents)
		VALUES ($1, $2, 'Bob', 'bob@example.com', '2025-12-20', '2025-12-22', 1, 0, 'none', 20000, 20000)`,
		uuid.New(), roomID)
	s.Require().NoError(err)

	err = s.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().RecomputeRoomAvailability(ctx, roomID, s.clock.Today())
	})
	s.Require().NoError(err)
	s.True(s.roomAvailable(roomID))
}

func (s *BookingRepositorySuite) TestHasOverlapBoundaries() {
	roomID := s.createRoom("100.00")

	_, err := s.commands.Create(context.Background(),
		s.createInput(roomID, "2026-02-10", "2026-02-12", "200.00"))
	s.Require().NoError(err)

	stay := func(in, out string) booking.Stay {
		a, err := time.Parse("2006-01-02", in)
		s.Require().NoError(err)
		b, err := time.Parse("2006-01-02", out)
		s.Require().NoError(err)
		st, err := booking.NewStay(a, b)
		s.Require().NoError(err)
		return st
	}

	cases := []struct {
		name string
		stay booking.Stay
		want bool
	}{
		{"identical", stay("2026-02-10", "2026-02-12"), true},
		{"ends on check-in day", stay("2026-02-08", "2026-02-10"), false},
		{"starts on checkout day", stay("2026-02-12", "2026-02-14"), false},
		{"overlaps one night", stay("2026-02-11", "2026-02-13"), true},
		{"contains", stay("2026-02-09", "2026-02-13"), true},
	}

	repo := repository.NewBookingRepository(s.pool)
	for _, tc := range cases {
		got, err := repo.HasOverlap(context.Background(), roomID, tc.stay)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.want, got, tc.name)
	}
}
