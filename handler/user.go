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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/user")
	g.Use(authorize)
	g.GET("/me", context.Wrap(h.Me))
	g.POST("/info", context.Wrap(h.UpdateInfo))
}

func (h *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	user, err := h.UserService.Me(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (h *User) UpdateInfo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	user, err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
