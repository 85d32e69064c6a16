package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/controllers"
	"github.com/shreeambika/easyshop-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api", middlewares.RequireAuth())
	{
		orders.POST("/create-order", controllers.CreateOrder)
		orders.GET("/my-orders", controllers.GetMyOrders)
	}
}
