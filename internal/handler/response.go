package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps application error codes onto HTTP statuses. Storage
// failures hide their cause from the client; everything else surfaces its
// message verbatim.
func RespondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)

	var status int
	switch code {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrInvalidInput:
		status = http.StatusBadRequest
	case apperrors.ErrInvalidAssignment:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(status, NewErrorResponse("internal server error"))
		return
	}

	c.JSON(status, NewErrorResponse(err.Error()))
}
