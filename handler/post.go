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

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	UserService service.IUserService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	adminOnly := middleware.AdminOnly()

	g := r.Group("/v1/posts")
	g.GET("", context.Wrap(h.Feed))
	g.GET("/:id", context.Wrap(h.Detail))
	g.POST("/:id/view", context.Wrap(h.View))
	g.POST("", authorize, context.Wrap(h.Publish))
	g.POST("/describe", authorize, context.Wrap(h.Describe))
	g.PUT("/:id", authorize, adminOnly, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, adminOnly, context.Wrap(h.Delete))
}

func (h *Post) Feed(c *gin.Context) error {
	var q types.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	response.Success(c, h.PostService.Feed(q))
	return nil
}

func (h *Post) Detail(c *gin.Context) error {
	post, err := h.PostService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (h *Post) View(c *gin.Context) error {
	if err := h.PostService.View(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Post) Publish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var post types.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	author, err := h.UserService.Me(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	created, err := h.PostService.Publish(c.Request.Context(), &post, author)
	if err != nil {
		return err
	}
	response.Success(c, created)
	return nil
}

func (h *Post) Update(c *gin.Context) error {
	var post types.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	post.ID = c.Param("id")
	if err := h.PostService.Update(c.Request.Context(), &post); err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (h *Post) Delete(c *gin.Context) error {
	if err := h.PostService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Post) Describe(c *gin.Context) error {
	var req types.GenDescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	text, err := h.PostService.Describe(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"description": text})
	return nil
}
