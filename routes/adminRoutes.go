package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/controllers"
	"github.com/shreeambika/easyshop-api/middlewares"
)

func AdminRoutes(server *gin.Engine, limiter *middlewares.RateLimiter) {
	server.POST("/api/admin/login", limiter.Limit(), controllers.AdminLogin)
	server.POST("/api/admin/verify-otp", limiter.Limit(), controllers.AdminVerifyOTP)

	admin := server.Group("/api", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/users", controllers.GetUsers)
		admin.GET("/orders", controllers.GetOrders)
		admin.POST("/admin/order-status", controllers.UpdateOrderStatus)
		admin.GET("/admin/upi", controllers.GetUPISetting)
		admin.POST("/admin/upi", controllers.UpdateUPISetting)
		admin.POST("/admin/banner", controllers.UpdateBanner)
		admin.POST("/admin/products", controllers.CreateProduct)
		admin.PUT("/admin/products/:id", controllers.UpdateProduct)
		admin.DELETE("/admin/products/:id", controllers.DeleteProduct)
		admin.POST("/admin/products/:id/images", controllers.UploadProductImages)
	}
}
