package notify

import (
	"log"
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is handled by the CORS middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes expects rg to be guarded by auth and admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/feed", h.Feed)
}

// Feed upgrades the connection and streams reservation events until the
// client disconnects.
func (h *Handler) Feed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPGRADE_FAILED", "Failed to upgrade connection")
		return
	}

	id := h.hub.Register(conn)
	log.Printf("admin feed connected id=%d total=%d", id, h.hub.ConnectionCount())

	go func() {
		defer h.hub.Unregister(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
