package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/search", h.SearchRooms)
		rooms.GET("/:id", h.GetRoom)
	}
}

// ListRooms handles GET /api/v1/rooms
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

// SearchRooms handles GET /api/v1/rooms/search with filters
func (h *Handler) SearchRooms(c *gin.Context) {
	var f repository.RoomFilters

	f.Type = c.Query("type")

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if val, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			f.MaxPrice = val
		}
	}

	if available := c.Query("available"); available != "" {
		v := available == "true"
		f.Availability = &v
	}

	rooms, err := h.service.SearchRooms(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoom handles GET /api/v1/rooms/:id
func (h *Handler) GetRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}
