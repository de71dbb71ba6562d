package api

import (
	"errors"
	"net/http"

	"samhotel-api/internal/handler/dto/request"
	"samhotel-api/internal/handler/dto/response"
	"samhotel-api/internal/handler/httperr"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, qs queries.RoomQueries) *RoomHandler {
	return &RoomHandler{commands: cmds, queries: qs}
}

// List godoc
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200 {array} response.Room
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromRoomViews(views))
}

// Get godoc
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} response.Room
// @Failure      404 {object} map[string]string
// @Router       /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	view, err := h.queries.ByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "room not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromRoomView(view))
}

// Calendar godoc
// @Summary      Booked days of a room
// @Description  Lists every occupied date, inclusive of check-in and check-out days.
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} response.RoomCalendar
// @Failure      404 {object} map[string]string
// @Router       /api/rooms/{id}/calendar [get]
func (h *RoomHandler) Calendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	view, err := h.queries.Calendar(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "room not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarView(view))
}

// Create godoc
// @Summary      Create a room (admin only)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body request.CreateRoom true "Room details"
// @Success      201 {object} response.Room
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.CreateRoom
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateRoomInput{
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
		Images:      req.Images,
	})
	if err != nil {
		if errors.Is(err, commands.ErrValidation) {
			httperr.BadRequest(c, err.Error())
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, response.FromRoomView(view))
}

// Update godoc
// @Summary      Update a room (admin only)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Room ID"
// @Param        request body request.UpdateRoom true "Fields to change"
// @Success      200 {object} response.Room
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	var req request.UpdateRoom
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, commands.UpdateRoomInput{
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
		Images:      req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.NotFound(c, "room not found")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromRoomView(view))
}

// Delete godoc
// @Summary      Delete a room (admin only)
// @Description  Refused while the room still has bookings with a checkout today or later.
// @Tags         rooms
// @Param        id path string true "Room ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.NotFound(c, "room not found")
		case errors.Is(err, commands.ErrRoomHasActiveBookings):
			httperr.BadRequest(c, "room still has active bookings")
		default:
			httperr.Internal(c)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
