package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/utils"
)

// respondError maps taxonomy errors onto HTTP statuses. Anything outside the
// taxonomy is logged with context and answered with a generic 500 so
// internal detail never reaches the caller.
func respondError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrTransient):
		log.Printf("%s: transient store failure: %v", operation, err)
		utils.JSONError(c, http.StatusInternalServerError, "temporary failure, please retry")
	default:
		log.Printf("%s: unexpected error: %v", operation, err)
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while processing your request")
	}
}

// parseIDParam reads the :id route parameter as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		utils.JSONError(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
