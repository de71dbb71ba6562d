package room

import (
	"errors"
	"strings"
	"time"

	"samhotel-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("room name is required")
	ErrNegativeRate  = errors.New("nightly rate cannot be negative")
	ErrTooManyImages = errors.New("a room carries at most three images")
)

const maxImages = 3

// Room's availability flag is a derived projection: it must always equal
// "no booking exists for this room whose checkout date is >= today". The
// booking repository's recompute statement is its only writer.
type Room struct {
	id          uuid.UUID
	name        string
	description string
	rate        booking.Money
	available   bool
	images      []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(name, description string, rate booking.Money, images []string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if rate.Cents() < 0 {
		return nil, ErrNegativeRate
	}
	if len(images) > maxImages {
		return nil, ErrTooManyImages
	}

	return &Room{
		id:          uuid.New(),
		name:        name,
		description: description,
		rate:        rate,
		available:   true,
		images:      images,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name, description string,
	rate booking.Money,
	available bool,
	images []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		name:        name,
		description: description,
		rate:        rate,
		available:   available,
		images:      images,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) Name() string        { return r.name }
func (r *Room) Description() string { return r.description }
func (r *Room) Rate() booking.Money { return r.rate }
func (r *Room) Available() bool     { return r.available }
func (r *Room) Images() []string    { return r.images }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	r.name = name
	return nil
}

func (r *Room) SetDescription(description string) {
	r.description = description
}

func (r *Room) SetRate(rate booking.Money) error {
	if rate.Cents() < 0 {
		return ErrNegativeRate
	}
	r.rate = rate
	return nil
}

func (r *Room) SetImages(images []string) error {
	if len(images) > maxImages {
		return ErrTooManyImages
	}
	r.images = images
	return nil
}
