package context

import (
	"errors"
	"net/http"

	"cityinfo/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errors.New("user_id 不存在")
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return "", errors.New("user_id 类型错误")
	}

	return uid, nil
}

func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(CtxIsAdmin)
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}
