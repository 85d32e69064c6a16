package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shree Ambika Hardware & Plywood API.

AUTH
- POST "/api/register" - Create customer account
- POST "/api/login" - Access customer account
- POST "/api/forgot-password" - Request a password reset OTP
- POST "/api/reset-password" - Reset password with OTP

CATALOG
- GET "/api/products" - List products
- GET "/api/products/:id" - Get product by ID
- GET "/api/categories" - List categories
- GET "/api/banner" - Promotional banner

CART (requires login)
- GET "/api/cart" - Current cart with total
- POST "/api/cart/items" - Add a product to the cart
- PUT "/api/cart/items/:productId" - Set item quantity
- DELETE "/api/cart/items/:productId" - Remove an item
- DELETE "/api/cart" - Clear the cart

ORDERS (requires login)
- POST "/api/create-order" - Place an order
- GET "/api/my-orders" - List own orders

ADMIN
- POST "/api/admin/login" - Admin credentials, answered with an OTP
- POST "/api/admin/verify-otp" - Exchange OTP for an admin token
- GET "/api/users" - Registered customers
- GET "/api/orders" - All orders with customer details
- POST "/api/admin/order-status" - Update order/payment status
- GET|POST "/api/admin/upi" - Receiving UPI ID
- POST "/api/admin/banner" - Update the promotional banner
- POST|PUT|DELETE "/api/admin/products..." - Manage the catalog`

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
