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

type Wallet struct {
	Config        *config.Config
	WalletService service.IWalletService
	UserService   service.IUserService
	ConfigService service.IConfigService
}

func (h *Wallet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/wallet")
	g.Use(authorize)
	g.GET("/transactions", context.Wrap(h.Transactions))
	g.GET("/recharge/qr", context.Wrap(h.RechargeQR))
	g.POST("/recharge", context.Wrap(h.Recharge))
	g.POST("/withdraw", context.Wrap(h.Withdraw))
}

func (h *Wallet) Transactions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	txs, err := h.WalletService.Transactions(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, txs)
	return nil
}

// RechargeQR 线下转账收款码，由管理员在后台配置
func (h *Wallet) RechargeQR(c *gin.Context) error {
	qr, err := h.ConfigService.Get(c.Request.Context(), types.ConfigKeyPaymentQR)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"qr_url": qr})
	return nil
}

func (h *Wallet) Recharge(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.RechargeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	tx, err := h.WalletService.Recharge(c.Request.Context(), userID, req.Amount)
	if err != nil {
		return err
	}
	response.Success(c, tx)
	return nil
}

func (h *Wallet) Withdraw(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.WithdrawReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	user, err := h.UserService.Me(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	w, err := h.WalletService.Withdraw(c.Request.Context(), user, &req)
	if err != nil {
		return err
	}
	response.Success(c, w)
	return nil
}
