package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/controllers"
	"github.com/shreeambika/easyshop-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/api/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.PUT("/items/:productId", controllers.UpdateCartItem)
		cart.DELETE("/items/:productId", controllers.DeleteCartItem)
		cart.DELETE("", controllers.ClearCart)
	}
}
