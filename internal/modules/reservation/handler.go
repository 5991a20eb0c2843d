package reservation

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations/history", h.GetHistory)
	rg.DELETE("/reservations/:id", h.CancelReservation)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	res, err := h.service.CreateReservation(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrRoomUnavailable:
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for booking")
		case ErrInvalidDateRange:
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out date must be after check-in date")
		case ErrDateConflict:
			response.Error(c, http.StatusConflict, "DATE_CONFLICT", "Room is already booked for overlapping dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) GetHistory(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": history})
}

// CancelReservation allows the owning user or an admin to cancel. The
// ownership check is API-layer policy; the engine itself does not authorize.
func (h *Handler) CancelReservation(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	res, err := h.service.GetByID(c.Request.Context(), reservationID)
	if err != nil {
		if err == ErrReservationNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservation")
		return
	}

	if res.UserID != userID && role != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only cancel your own reservations")
		return
	}

	updated, err := h.service.CancelReservation(c.Request.Context(), reservationID)
	if err != nil {
		if err == ErrReservationNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": updated})
}
