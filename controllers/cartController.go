package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shreeambika/easyshop-api/initializers"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/services"
)

func newCartService() *services.CartService {
	return services.NewCartService(
		repository.NewCartRepository(initializers.DB),
		repository.NewProductRepository(initializers.DB),
	)
}

// currentUserID extracts the user id from the JWT claims placed in the
// context by the auth middleware.
func currentUserID(ctx *gin.Context) (int, bool) {
	claimsValue, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}
	claims, ok := claimsValue.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(id), true
}

func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := newCartService().GetCart(userID)
	if err != nil {
		log.Println("Failed to fetch cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":       cart,
		"totalPrice": models.CartTotal(cart.Items),
	})
}

func AddCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "productId is required")
		return
	}

	item, err := newCartService().AddToCart(userID, body.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("Failed to add cart item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": item.Name + " added to cart",
		"item":    item,
	})
}

func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "quantity is required")
		return
	}

	err := newCartService().UpdateQuantity(userID, ctx.Param("productId"), body.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
			return
		}
		log.Println("Failed to update cart item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart updated"})
}

func DeleteCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := newCartService().RemoveFromCart(userID, ctx.Param("productId")); err != nil {
		log.Println("Failed to remove cart item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func ClearCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := newCartService().ClearCart(userID); err != nil {
		log.Println("Failed to clear cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
