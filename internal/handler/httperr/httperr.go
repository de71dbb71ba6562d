package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All error responses share one shape: {"error": "<message>"}.

func Respond(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Respond(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Respond(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Respond(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	Respond(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Respond(c, http.StatusConflict, msg)
}

func Internal(c *gin.Context) {
	Respond(c, http.StatusInternalServerError, "internal server error")
}
