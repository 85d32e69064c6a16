package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/controllers"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/api/products", controllers.GetProducts)
	server.GET("/api/products/:id", controllers.GetProduct)
	server.GET("/api/categories", controllers.GetCategories)
	server.GET("/api/banner", controllers.GetBanner)
}
