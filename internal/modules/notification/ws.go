package notification

import (
	"net/http"
	"time"

	"estateoffice/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// WSHandler upgrades back-office connections so notifications reach the
// browser without polling. Browsers cannot set headers on websocket
// requests, so the token travels as a query parameter.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	logger     *zap.Logger
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService, logger: logger}
}

func (h *WSHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws/notifications", h.Handle)
}

func (h *WSHandler) Handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(userID, conn)
	h.logger.Info("websocket connected", zap.Int64("user_id", userID))

	defer func() {
		h.hub.Unregister(userID)
		h.logger.Info("websocket disconnected", zap.Int64("user_id", userID))
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go h.pingLoop(conn)
	h.readLoop(conn, userID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

// readLoop drains the connection. The stream is push-only; incoming
// frames are discarded, a read error ends the session.
func (h *WSHandler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error",
					zap.Int64("user_id", userID), zap.Error(err))
			}
			return
		}
	}
}
