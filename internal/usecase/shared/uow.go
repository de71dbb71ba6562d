package shared

import (
	"context"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/domain/inventory"
	"samhotel-api/internal/domain/room"
	"samhotel-api/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction with retry for ordinary writes
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction for the booking write path,
	// so the overlap check and the insert are atomic against concurrent
	// requests for the same room
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: snapshot reads outside any explicit transaction
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Users() UserRepository
	Inventory() InventoryRepository
	Reads() CommandReads
}

// CommandReads returns minimal write-side snapshots so commands never depend
// on read-side view types.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// HasOverlap applies the half-open intersection rule against committed
	// bookings for the room.
	HasOverlap(ctx context.Context, roomID uuid.UUID, stay booking.Stay) (bool, error)
	// HasActiveBookings reports any booking with checkout on or after today.
	HasActiveBookings(ctx context.Context, roomID uuid.UUID, today time.Time) (bool, error)
	// RecomputeRoomAvailability is the sole writer of rooms.available.
	RecomputeRoomAvailability(ctx context.Context, roomID uuid.UUID, today time.Time) error
	SetPaymentResponse(ctx context.Context, id uuid.UUID, payload []byte) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type InventoryRepository interface {
	CreateCategory(ctx context.Context, c *inventory.Category) error
	UpdateCategory(ctx context.Context, c *inventory.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateProduct(ctx context.Context, p *inventory.Product) error
	UpdateProduct(ctx context.Context, p *inventory.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// CreateRestock inserts the restock row and increments product stock in
	// the same statement batch.
	CreateRestock(ctx context.Context, r *inventory.Restock) error
	// CreateSale inserts header and lines, decrementing stock per line; an
	// oversold line fails the whole sale.
	CreateSale(ctx context.Context, s *inventory.Sale) error
}
