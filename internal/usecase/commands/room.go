package commands

import (
	"context"
	"errors"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/domain/room"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/usecase/queries"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomHasActiveBookings = errors.New("room has active bookings")

type CreateRoomInput struct {
	Name        string
	Description string
	Rate        string
	Images      []string
}

type UpdateRoomInput struct {
	Name        *string
	Description *string
	Rate        *string
	Images      []string
}

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	rooms queries.RoomReadStore
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, rooms queries.RoomReadStore, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, rooms: rooms, clock: clk}
}

func (c *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error) {
	rate, err := booking.ParseAmount(in.Rate)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	r, err := room.NewRoom(in.Name, in.Description, rate, in.Images)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	return c.rooms.FindByID(ctx, r.ID())
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		view, err := c.rooms.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrRoomNotFound
			}
			return err
		}

		rate, err := booking.ParseAmount(view.Rate)
		if err != nil {
			return errs.Wrap(err, "stored rate is invalid")
		}
		r := room.ReconstructRoom(view.ID, view.Name, view.Description, rate, view.Available, view.Images, view.CreatedAt, view.UpdatedAt)

		if in.Name != nil {
			if err := r.Rename(*in.Name); err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}
		if in.Description != nil {
			r.SetDescription(*in.Description)
		}
		if in.Rate != nil {
			newRate, err := booking.ParseAmount(*in.Rate)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			if err := r.SetRate(newRate); err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}
		if in.Images != nil {
			if err := r.SetImages(in.Images); err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}

		return tx.Rooms().Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	return c.rooms.FindByID(ctx, id)
}

// Delete refuses while any booking with a checkout on or after today exists;
// history rows from past stays do not block removal.
func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	today := c.clock.Today()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrRoomNotFound
			}
			return err
		}

		active, err := tx.Bookings().HasActiveBookings(ctx, id, today)
		if err != nil {
			return err
		}
		if active {
			return ErrRoomHasActiveBookings
		}

		return tx.Rooms().Delete(ctx, id)
	})
}
