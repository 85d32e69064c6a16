package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/controllers"
	"github.com/shreeambika/easyshop-api/middlewares"
)

func AuthRoutes(server *gin.Engine, limiter *middlewares.RateLimiter) {
	auth := server.Group("/api", limiter.Limit())
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
