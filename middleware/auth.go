package middleware

import (
	"net/http"
	"strings"

	"cityinfo/pkg/context"
	"cityinfo/pkg/jwt"
	"cityinfo/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "api", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth 游客可访问的接口，带合法 token 时附上身份
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwt.ParseToken(secret, "api", parts[1]); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
				c.Set(context.CtxIsAdmin, claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// AdminOnly 必须先过 Auth
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "需要管理员权限")
			return
		}
		c.Next()
	}
}
