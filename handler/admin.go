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

// Admin 管理员控制台：审核、客服、配置、分类管理
type Admin struct {
	Config         *config.Config
	ChatService    service.IChatService
	WalletService  service.IWalletService
	ConfigService  service.IConfigService
	CatalogService service.ICatalogService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/admin")
	g.Use(authorize, middleware.AdminOnly())

	g.GET("/recharges", context.Wrap(h.PendingRecharges))
	g.POST("/recharges/:id/review", context.Wrap(h.ReviewRecharge))
	g.GET("/withdrawals", context.Wrap(h.PendingWithdrawals))
	g.POST("/withdrawals/:id/review", context.Wrap(h.ReviewWithdrawal))

	g.GET("/chats", context.Wrap(h.Chats))
	g.POST("/chats/:user_id/reply", context.Wrap(h.Reply))

	g.GET("/config/:key", context.Wrap(h.GetConfig))
	g.POST("/config/:key", context.Wrap(h.SaveConfig))
	g.POST("/announcement", context.Wrap(h.SaveAnnouncement))

	g.POST("/categories", context.Wrap(h.SaveCategory))
	g.DELETE("/categories/:key", context.Wrap(h.DeleteCategory))
}

func (h *Admin) PendingRecharges(c *gin.Context) error {
	items, err := h.WalletService.PendingRecharges(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Admin) ReviewRecharge(c *gin.Context) error {
	var req types.ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	approved := req.Status == types.TxSuccess
	if !approved && req.Status != types.TxFailed {
		return response.NewError(http.StatusBadRequest, "审核状态不合法")
	}
	if err := h.WalletService.ReviewRecharge(c.Request.Context(), c.Param("id"), approved); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) PendingWithdrawals(c *gin.Context) error {
	items, err := h.WalletService.PendingWithdrawals(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Admin) ReviewWithdrawal(c *gin.Context) error {
	var req types.ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	if err := h.WalletService.ReviewWithdrawal(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Chats(c *gin.Context) error {
	response.Success(c, h.ChatService.SupportConversations())
	return nil
}

func (h *Admin) Reply(c *gin.Context) error {
	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	msg, err := h.ChatService.AdminReply(c.Request.Context(), c.Param("user_id"), req.Content)
	if err != nil {
		return err
	}
	response.Success(c, msg)
	return nil
}

func (h *Admin) GetConfig(c *gin.Context) error {
	value, err := h.ConfigService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"key": c.Param("key"), "value": value})
	return nil
}

func (h *Admin) SaveConfig(c *gin.Context) error {
	var req types.SaveConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	if err := h.ConfigService.Save(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) SaveAnnouncement(c *gin.Context) error {
	var req types.SaveConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	if err := h.ConfigService.SetAnnouncement(c.Request.Context(), req.Value); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) SaveCategory(c *gin.Context) error {
	var req types.SysCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	if err := h.CatalogService.SaveCategory(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, req)
	return nil
}

func (h *Admin) DeleteCategory(c *gin.Context) error {
	if err := h.CatalogService.DeleteCategory(c.Request.Context(), c.Param("key")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
