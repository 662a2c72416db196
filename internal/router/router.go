package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/handlers/public"
	"github.com/souq-next/internal/provider"
)

// New 构建 HTTP 路由
func New(container *provider.Container) *gin.Engine {
	mode := container.Config.Server.Mode
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(CORSMiddleware(container.Config.CORS.AllowOrigins))

	h := public.NewHandler(container)

	api := r.Group("/api/v1")

	// 无需登录的店面接口
	pub := api.Group("/public")
	{
		pub.GET("/config", h.GetSiteConfig)
		pub.GET("/categories", h.ListCategories)
		pub.GET("/products", h.ListProducts)
		pub.GET("/products/:slug", h.GetProduct)
		pub.POST("/coupons/check",
			RateLimitMiddleware("coupon_check", 20, time.Minute),
			h.CheckCoupon,
		)
	}

	// 登录态接口
	authed := api.Group("")
	authed.Use(UserJWTAuthMiddleware(container))
	{
		authed.GET("/cart", h.GetCart)
		authed.POST("/cart/items", h.AddCartItem)
		authed.PUT("/cart/items", h.SetCartItem)
		authed.DELETE("/cart/items/:product_id", h.RemoveCartItem)
		authed.DELETE("/cart", h.ClearCart)
		authed.POST("/cart/merge", h.MergeCart)

		authed.POST("/orders", h.CreateOrder)
		authed.GET("/orders", h.ListOrders)
		authed.GET("/orders/:id", h.GetOrder)
		authed.GET("/orders/by-order-no/:order_no", h.GetOrderByOrderNo)
		authed.POST("/orders/:id/cancel", h.CancelOrder)
	}

	return r
}
