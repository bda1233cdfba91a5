package handler

import (
	"net/http"

	"cityinfo/pkg/context"
	"cityinfo/pkg/response"
	"cityinfo/service"
	"cityinfo/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/code", context.Wrap(h.SendCode))
	g.POST("/login", context.Wrap(h.Login))
}

func (h *Auth) SendCode(c *gin.Context) error {
	var req types.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	if err := h.AuthService.SendCode(c.Request.Context(), req.Phone); err != nil {
		return err
	}
	response.Success(c, "验证码已发送")
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
