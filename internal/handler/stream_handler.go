package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/ws"
	"github.com/clothesguard/api/pkg/auth"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement is handled by the CORS layer on the REST
	// surface; the stream authenticates via token instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler upgrades dashboard connections to the live event stream
type StreamHandler struct {
	hub        *ws.Hub
	jwtManager *auth.JWTManager
}

func NewStreamHandler(hub *ws.Hub, jwtManager *auth.JWTManager) *StreamHandler {
	return &StreamHandler{hub: hub, jwtManager: jwtManager}
}

// HandleWebSocket godoc
// @Summary Subscribe to the live event stream
// @Description Authenticated via ?token=<jwt> because browsers cannot set headers on WebSocket upgrades.
// @Tags Stream
// @Param token query string true "Bearer token"
// @Success 101
// @Failure 401 {object} model.ErrorResponse
// @Router /ws [get]
func (h *StreamHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Token is required"})
		return
	}

	claims, err := h.jwtManager.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, claims.UserID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
