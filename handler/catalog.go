package handler

import (
	"net/http"
	"strconv"

	"cityinfo/config"
	"cityinfo/middleware"
	"cityinfo/pkg/context"
	"cityinfo/pkg/response"
	"cityinfo/service"
	"cityinfo/view"

	"github.com/gin-gonic/gin"
)

type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/home", context.Wrap(h.Home))
	r.GET("/v1/merchants/:id", context.Wrap(h.Merchant))
	r.POST("/v1/city", context.Wrap(h.SelectCity))
	r.GET("/v1/city/locate", context.Wrap(h.LocateCity))

	// 广告位跳转要带上访客身份做视图校验
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))
	r.GET("/v1/banners/:id/target", optional, context.Wrap(h.BannerTarget))
	r.GET("/v1/view/resolve", optional, context.Wrap(h.ResolveView))
}

func (h *Catalog) Home(c *gin.Context) error {
	response.Success(c, h.CatalogService.Home())
	return nil
}

func (h *Catalog) Merchant(c *gin.Context) error {
	detail, err := h.CatalogService.Merchant(c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

type selectCityReq struct {
	City string `json:"city" binding:"required"`
}

func (h *Catalog) SelectCity(c *gin.Context) error {
	var req selectCityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	h.CatalogService.SelectCity(req.City)
	response.Success(c, gin.H{"city": req.City})
	return nil
}

func (h *Catalog) LocateCity(c *gin.Context) error {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		return response.NewError(http.StatusBadRequest, "经纬度参数错误")
	}
	city := h.CatalogService.LocateCity(c.Request.Context(), lat, lng)
	response.Success(c, gin.H{"city": city})
	return nil
}

func (h *Catalog) BannerTarget(c *gin.Context) error {
	screen, err := h.CatalogService.BannerTarget(c.Param("id"))
	if err != nil {
		return err
	}
	resolved := view.Resolve(*screen, sessionOf(c))
	response.Success(c, gin.H{
		"screen":          resolved,
		"nav_bar_visible": view.NavBarVisible(resolved.Name),
	})
	return nil
}

// ResolveView 客户端路由校验：未知视图、缺参视图、未登录受限视图都会被重定向
func (h *Catalog) ResolveView(c *gin.Context) error {
	target := view.Screen{
		Name:       c.Query("name"),
		PostID:     c.Query("post_id"),
		MerchantID: c.Query("merchant_id"),
		ChatID:     c.Query("chat_id"),
	}
	resolved := view.Resolve(target, sessionOf(c))
	response.Success(c, gin.H{
		"screen":          resolved,
		"nav_bar_visible": view.NavBarVisible(resolved.Name),
	})
	return nil
}

func sessionOf(c *gin.Context) view.Session {
	uid, err := context.GetUserID(c)
	return view.Session{
		UserID:   uid,
		IsAdmin:  context.IsAdmin(c),
		LoggedIn: err == nil,
	}
}
