package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"restopos/pkg/resp"
	"restopos/services"
)

// fail maps service errors onto the response envelope. Raw storage errors
// come out as 500 without leaking driver detail in a structured way.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		resp.Unauthorized(c, "invalid credentials")
	default:
		resp.ServerError(c, err)
	}
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindJSON parses the body and, on schema failure, answers 400 with a
// field-level detail list the UI can render next to each input.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]fieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag()})
			}
			resp.ValidationFailed(c, "validation failed", details)
			return false
		}
		resp.BadRequest(c, err.Error())
		return false
	}
	return true
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	if id < 0 {
		return 0
	}
	return uint(id)
}
