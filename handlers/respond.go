package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// fail maps a service error to an HTTP status and writes the standard error
// envelope. Anything unrecognized is an opaque server error.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrWrongPassword):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrCartEmpty):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
