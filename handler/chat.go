package handler

import (
	"net/http"

	"cityinfo/config"
	"cityinfo/middleware"
	"cityinfo/pkg/context"
	"cityinfo/pkg/response"
	"cityinfo/service"
	"cityinfo/types"

	"github.com/gin-gonic/gin"
)

type Chat struct {
	Config      *config.Config
	ChatService service.IChatService
}

func (h *Chat) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/chat")
	g.Use(authorize)
	g.GET("/sessions", context.Wrap(h.Sessions))
	g.GET("/support", context.Wrap(h.SupportHistory))
	g.POST("/support", context.Wrap(h.SendSupport))
	g.GET("/direct/:id", context.Wrap(h.DirectHistory))
	g.POST("/direct/:id", context.Wrap(h.SendDirect))
}

func (h *Chat) Sessions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	response.Success(c, h.ChatService.Sessions(userID))
	return nil
}

func (h *Chat) SupportHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	response.Success(c, h.ChatService.SupportHistory(userID))
	return nil
}

func (h *Chat) SendSupport(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	msg, err := h.ChatService.SendSupport(c.Request.Context(), userID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, msg)
	return nil
}

func (h *Chat) DirectHistory(c *gin.Context) error {
	response.Success(c, h.ChatService.DirectHistory(c.Param("id")))
	return nil
}

func (h *Chat) SendDirect(c *gin.Context) error {
	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	msg, err := h.ChatService.SendDirect(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	response.Success(c, msg)
	return nil
}
