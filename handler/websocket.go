package handler

import (
	"net/http"
	"sync"
	"time"

	"cityinfo/config"
	"cityinfo/pkg/jwt"
	"cityinfo/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type OnlineUser struct {
	Conn     *websocket.Conn
	LastPing int64 // Unix 秒
}

// Hub 在线用户表，客服消息的实时推送出口
type Hub struct {
	mu     sync.Mutex
	online map[string]*OnlineUser
}

var _ service.Notifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{online: make(map[string]*OnlineUser)}
}

// Push 在线则实时推送，离线静默丢弃（历史可拉取）
func (h *Hub) Push(userID string, payload any) {
	h.mu.Lock()
	u, ok := h.online[userID]
	h.mu.Unlock()
	if ok {
		_ = u.Conn.WriteJSON(payload)
	}
}

func (h *Hub) add(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.online[userID]; ok {
		old.Conn.Close()
	}
	h.online[userID] = &OnlineUser{
		Conn:     conn,
		LastPing: time.Now().Unix(),
	}
}

func (h *Hub) remove(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.online[userID]; ok && cur.Conn == conn {
		delete(h.online, userID)
	}
}

func (h *Hub) touch(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if u, ok := h.online[userID]; ok {
		u.LastPing = time.Now().Unix()
	}
}

// 清理假在线
func (h *Hub) StartOnlineChecker() {
	go func() {
		for {
			time.Sleep(30 * time.Second)
			now := time.Now().Unix()

			h.mu.Lock()
			for uid, u := range h.online {
				if now-u.LastPing > 60 {
					u.Conn.Close()
					delete(h.online, uid)
				}
			}
			h.mu.Unlock()
		}
	}()
}

type WSHandler struct {
	Config      *config.Config
	ChatService service.IChatService
	Hub         *Hub
}

func (h *WSHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/ws", h.HandleWS)
}

func (h *WSHandler) HandleWS(c *gin.Context) {
	// token 放在 query，浏览器 WebSocket 不支持自定义 Header
	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "api", c.Query("token"))
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.Hub.add(userID, conn)
	defer func() {
		h.Hub.remove(userID, conn)
		conn.Close()
	}()

	for {
		var wsMsg struct {
			Type    string `json:"type"` // ping / support / direct
			ChatID  string `json:"chat_id"`
			Content string `json:"content"`
		}

		if err := conn.ReadJSON(&wsMsg); err != nil {
			// 客户端断开是正常行为
			return
		}

		switch wsMsg.Type {
		case "ping":
			h.Hub.touch(userID)
			_ = conn.WriteJSON(gin.H{"type": "pong"})

		case "support":
			msg, err := h.ChatService.SendSupport(c.Request.Context(), userID, wsMsg.Content)
			if err != nil {
				_ = conn.WriteJSON(gin.H{"type": "error", "msg": err.Error()})
				continue
			}
			_ = conn.WriteJSON(gin.H{"type": "support", "message": msg})

		case "direct":
			msg, err := h.ChatService.SendDirect(c.Request.Context(), wsMsg.ChatID, wsMsg.Content)
			if err != nil {
				_ = conn.WriteJSON(gin.H{"type": "error", "msg": err.Error()})
				continue
			}
			_ = conn.WriteJSON(gin.H{"type": "direct", "chat_id": wsMsg.ChatID, "message": msg})
		}
	}
}
