package api

import (
	"errors"
	"net/http"

	"samhotel-api/internal/handler/dto/request"
	"samhotel-api/internal/handler/dto/response"
	"samhotel-api/internal/handler/httperr"
	"samhotel-api/internal/handler/middleware"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands commands.AuthCommands
	users    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries) *AuthHandler {
	return &AuthHandler{commands: cmds, users: users}
}

// Register godoc
// @Summary      Register a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.Register true "Account details"
// @Success      201 {object} jwt.TokenPair
// @Failure      400 {object} map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.commands.Register(c.Request.Context(), commands.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		SecondName:  req.SecondName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.BadRequest(c, "email is already registered")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusCreated, pair)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.Login true "Credentials"
// @Success      200 {object} jwt.TokenPair
// @Failure      401 {object} map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.commands.Login(c.Request.Context(), commands.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.Unauthorized(c, "invalid email or password")
		case errors.Is(err, commands.ErrAccountDisabled):
			httperr.Forbidden(c, "account is disabled")
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh godoc
// @Summary      Rotate the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.Refresh true "Refresh token"
// @Success      200 {object} jwt.TokenPair
// @Failure      401 {object} map[string]string
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.Refresh
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.commands.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRefresh):
			httperr.Unauthorized(c, "invalid refresh token")
		case errors.Is(err, commands.ErrAccountDisabled):
			httperr.Forbidden(c, "account is disabled")
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.User
// @Failure      401 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c, "authorization required")
		return
	}

	view, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromUserView(view))
}
