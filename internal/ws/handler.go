package ws

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/middleware"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/utils"
	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/ws"
)

type wsHandler struct {
	notificationHub *ws.NotificationHub
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func RegisterRoutes(rg *gin.RouterGroup) {
	handler := wsHandler{
		notificationHub: ws.NewNotificationHub(),
	}

	routes := rg.Group("/ws")
	routes.GET("/profile", middleware.VerifyAuthToken, handler.serveWs)
}

// serveWs subscribes the caller to its own uid topic; every snapshot change
// and ledger refresh hint for that user is pushed over the connection.
func (wsh *wsHandler) serveWs(c *gin.Context) {
	uid := utils.GetIdentity(c).Uid
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Error upgrading ws connection")
		return
	}
	defer wsh.notificationHub.UnregisterListener(uid, conn)

	wsh.notificationHub.RegisterListener(uid, conn)

	for {
		var buffer any
		err := conn.ReadJSON(&buffer)
		if err != nil {
			log.Warn().Err(err).Msg("Error reading ws message")
			return
		}
	}
}
