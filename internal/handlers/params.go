package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/middleware"
)

// paramID parses a positive integer path parameter and writes 400 when it
// is not one.
func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		httperr.Write(c, http.StatusBadRequest, "invalid_id", "Path id must be a positive integer.")
		return 0, false
	}
	return uint(n), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return false
	}
	return true
}

// actor is only valid behind middleware.AuthMiddleware.
func actor(c *gin.Context) auth.Identity {
	id, _ := middleware.CurrentIdentity(c)
	return id
}
