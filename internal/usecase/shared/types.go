package shared

import (
	"time"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	ID        uuid.UUID
	Name      string
	RateCents int64
	Available bool
}

type BookingSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	ClientName string
	CheckIn    time.Time
	CheckOut   time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	SecondName   string
	PhoneNumber  string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	SellingCents  int64
	StockQuantity int
}

type CategorySnapshot struct {
	ID   uuid.UUID
	Name string
}
