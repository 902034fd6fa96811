package promotion

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/handler"
	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/service/promotion"
)

type Handler struct {
	service *promotion.Service
}

func NewHandler(service *promotion.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	business := r.Group("/businesses/:id")
	business.GET("/promotions", h.ListPromotions)
	business.POST("/promotions", h.CreatePromotion)
	business.POST("/promotions/validate", h.ValidatePromotion)
}

type validatePromotionRequest struct {
	Code      string `json:"code" binding:"required"`
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required,dateonly"`
}

func (h *Handler) ListPromotions(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	promotions, err := h.service.ListPromotions(c.Request.Context(), businessID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(promotions))
}

func (h *Handler) CreatePromotion(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	var req model.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	promo, err := h.service.CreatePromotion(c.Request.Context(), businessID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(promo))
}

// ValidatePromotion checks a code against a service and date without
// redeeming it. The booking flow revalidates at commit time.
func (h *Handler) ValidatePromotion(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	var req validatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}

	promo, err := h.service.Validate(c.Request.Context(), businessID, req.Code, serviceID, req.Date)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(promo))
}
