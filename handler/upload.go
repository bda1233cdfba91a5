package handler

import (
	"net/http"

	"cityinfo/config"
	"cityinfo/middleware"
	"cityinfo/pkg/context"
	"cityinfo/pkg/response"
	"cityinfo/storage"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config   *config.Config
	Uploader *storage.Uploader
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.POST("/v1/upload/image", authorize, context.Wrap(h.Image))
}

func (h *Upload) Image(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少图片文件")
	}
	result, err := h.Uploader.UploadImage(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
