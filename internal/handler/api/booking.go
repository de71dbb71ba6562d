package api

import (
	"errors"
	"fmt"
	"net/http"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/handler/dto/request"
	"samhotel-api/internal/handler/dto/response"
	"samhotel-api/internal/handler/httperr"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qs}
}

// Create godoc
// @Summary      Create a booking
// @Description  Books a room for a date range. The total is computed server-side and must match amount_paid exactly.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body request.CreateBooking true "Booking details"
// @Success      201 {object} response.Booking
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		httperr.BadRequest(c, "room_id must be a valid UUID")
		return
	}
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateBookingInput{
		RoomID:      roomID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      req.Adults,
		Children:    req.Children,
		MealPlan:    req.MealPlan,
		AmountPaid:  req.AmountPaid,
	})
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingView(view))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	var mismatch *booking.PaymentMismatchError
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.NotFound(c, "room not found")
	case errors.Is(err, commands.ErrDatesAlreadyBooked):
		httperr.BadRequest(c, "These dates are already booked. Please choose different dates.")
	case errors.As(err, &mismatch):
		httperr.BadRequest(c, fmt.Sprintf("Payment mismatch. Expected %s, got %s.", mismatch.Expected, mismatch.Got))
	case errors.Is(err, booking.ErrInvalidDateRange):
		httperr.BadRequest(c, "Check-out date must be after check-in date.")
	case errors.Is(err, booking.ErrInvalidAmount):
		httperr.BadRequest(c, "Amount paid is required and must be a valid amount.")
	case errors.Is(err, commands.ErrValidation):
		httperr.BadRequest(c, err.Error())
	default:
		httperr.Internal(c)
	}
}

// List godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        room_id query string false "Filter by room"
// @Success      200 {array} response.Booking
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var roomID *uuid.UUID
	if raw := c.Query("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "room_id must be a valid UUID")
			return
		}
		roomID = &id
	}

	views, err := h.queries.List(c.Request.Context(), roomID)
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingViews(views))
}

// Get godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} response.Booking
// @Failure      404 {object} map[string]string
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	view, err := h.queries.ByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "booking not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingView(view))
}

// SearchByEmail godoc
// @Summary      Search bookings by client email
// @Tags         bookings
// @Produce      json
// @Param        email query string true "Client email"
// @Success      200 {array} response.Booking
// @Failure      404 {object} map[string]string
// @Router       /api/bookings/search_by_email [get]
func (h *BookingHandler) SearchByEmail(c *gin.Context) {
	views, err := h.queries.SearchByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmailFilterRequired):
			httperr.BadRequest(c, "email query parameter is required")
		case errors.Is(err, queries.ErrNoBookingsForEmail):
			httperr.NotFound(c, "no bookings found for that email")
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromBookingViews(views))
}

// Delete godoc
// @Summary      Cancel a booking (admin only)
// @Description  Only bookings whose stay has not started yet can be cancelled.
// @Tags         bookings
// @Param        id path string true "Booking ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.NotFound(c, "booking not found")
		case errors.Is(err, commands.ErrStayAlreadyStarted):
			httperr.BadRequest(c, "a stay that has already started cannot be cancelled")
		default:
			httperr.Internal(c)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
