package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prestigedrive/prestigedrive/internal/notify"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 事件流只读且不含敏感字段，放开跨域
		return true
	},
}

// handleWS 把 HTTP 连接升级为 WebSocket 并挂入 Hub，之后由读写泵接管。
func (a *API) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if a.log != nil {
			a.log.Warnf("websocket upgrade failed: %v", err)
		}
		return
	}

	client := notify.NewClient(a.hub)
	a.hub.Register(client)

	go a.writePump(conn, client)
	go a.readPump(conn, client)
}

// writePump 把 Hub 广播的消息写入连接，并定期发 ping 保活。
func (a *API) writePump(conn *websocket.Conn, client *notify.Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send():
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub 已关闭该客户端
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 消费客户端来包（目前只处理 pong 保活），连接断开时从 Hub 注销。
func (a *API) readPump(conn *websocket.Conn, client *notify.Client) {
	defer func() {
		a.hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(65536)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				if a.log != nil {
					a.log.Debugf("websocket read error: %v", err)
				}
			}
			return
		}
	}
}
