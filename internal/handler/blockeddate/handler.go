package blockeddate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/handler"
	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/service/schedule"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	business := r.Group("/businesses/:id")
	business.GET("/blocked-dates", h.ListBlockedDates)
	business.POST("/blocked-dates", h.CreateBlockedDate)
	business.DELETE("/blocked-dates/:blockedDateId", h.DeleteBlockedDate)
}

func (h *Handler) ListBlockedDates(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	blocked, err := h.service.ListBlockedDates(c.Request.Context(), businessID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(blocked))
}

func (h *Handler) CreateBlockedDate(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	var req model.CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	blocked, err := h.service.CreateBlockedDate(c.Request.Context(), businessID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(blocked))
}

func (h *Handler) DeleteBlockedDate(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}
	blockedID, err := uuid.Parse(c.Param("blockedDateId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid blocked date ID"))
		return
	}

	if err := h.service.DeleteBlockedDate(c.Request.Context(), businessID, blockedID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
