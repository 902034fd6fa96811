package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/handler"
	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/bookings", h.CreateBooking)
	r.GET("/businesses/by-slug/:slug", h.GetBusinessBySlug)

	business := r.Group("/businesses/:id")
	business.GET("/slots", h.GetAvailableSlots)
	business.GET("/services", h.ListServices)
	business.GET("/bookings", h.ListBookings)
	business.GET("/bookings/:bookingId", h.GetBooking)
	business.PATCH("/bookings/:bookingId", h.UpdateBookingStatus)
}

// GetAvailableSlots returns the bookable grid for one business and date.
// Either service_id or duration selects the slot length; staff_id narrows the
// conflict scope to that staff member's calendar.
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date is required"))
		return
	}

	query := booking.SlotQuery{Date: date}

	if raw := c.Query("service_id"); raw != "" {
		serviceID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
			return
		}
		query.ServiceID = &serviceID
	} else {
		raw := c.Query("duration")
		if raw == "" {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("duration or service_id is required"))
			return
		}
		duration, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid duration"))
			return
		}
		query.DurationMinutes = duration
	}

	if raw := c.Query("staff_id"); raw != "" {
		staffID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
			return
		}
		query.StaffID = &staffID
	}

	slots, err := h.service.GetAvailableSlots(c.Request.Context(), businessID, query)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"date":  date,
		"slots": slots,
	}))
}

// GetBusinessBySlug serves the public booking-page lookup.
func (h *Handler) GetBusinessBySlug(c *gin.Context) {
	business, err := h.service.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(business))
}

func (h *Handler) ListServices(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), businessID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(booking))
}

func (h *Handler) GetBooking(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), businessID, bookingID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(booking))
}

func (h *Handler) ListBookings(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}

	filters := &model.BookingFilters{
		Date:   c.Query("date"),
		Status: model.BookingStatus(c.Query("status")),
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), businessID, filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid business ID"))
		return
	}
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booking, err := h.service.UpdateBookingStatus(c.Request.Context(), businessID, bookingID, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(booking))
}
