package notify

import (
	"sync"

	"github.com/prestigedrive/prestigedrive/internal/common/logger"
)

// Hub 维护所有活跃的 WebSocket 客户端并向其广播变更事件。
// 后台订阅方收到事件后做定向合并，不再整表重拉。
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        logger.Logger
	mu         sync.RWMutex
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run 事件主循环，需在独立 goroutine 中调用。
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			if h.log != nil {
				h.log.Debugf("notify client connected (total: %d)", total)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			if h.log != nil {
				h.log.Debugf("notify client disconnected (total: %d)", total)
			}

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 发送缓冲满：认为客户端已死，踢掉
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast 向所有在线客户端广播一条消息；通道满时丢弃而不是阻塞业务路径。
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		if h.log != nil {
			h.log.Warn("notify broadcast channel full, dropping message")
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount 当前在线客户端数。
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Client 一条 WebSocket 客户端连接。
type Client struct {
	hub  *Hub
	send chan []byte
}

func NewClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, 256),
	}
}

// Send 返回该客户端的发送通道（写泵消费）。
func (c *Client) Send() chan []byte {
	return c.send
}
