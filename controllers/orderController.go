package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeambika/easyshop-api/initializers"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/services"
)

const (
	msgOrderPlaced          = "Order placed successfully"
	msgInvalidTransactionID = "Invalid Transaction ID format"
	msgDuplicateTransaction = "Transaction ID has already been used"
	msgBankRejected         = "Bank rejected the transaction"
	msgFailedToCreateOrder  = "Failed to create order"
)

func newOrderService() *services.OrderService {
	return services.NewOrderService(
		repository.NewOrderRepository(initializers.DB),
		repository.NewSettingRepository(initializers.DB),
		services.NewUPIVerifier(),
	)
}

// CreateOrder accepts a prospective order, validates the payment claim and
// persists the order row under the authenticated user.
func CreateOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input services.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The order belongs to whoever the token identifies; a body carrying a
	// different user id is rejected outright.
	if input.UserID != 0 && input.UserID != userID {
		sendErrorResponse(ctx, http.StatusForbidden, "Order user does not match the authenticated user")
		return
	}
	input.UserID = userID

	orderID, err := newOrderService().CreateOrder(ctx.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		case errors.Is(err, services.ErrInvalidTransactionID):
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidTransactionID)
		case errors.Is(err, repository.ErrDuplicateTransactionID):
			sendErrorResponse(ctx, http.StatusBadRequest, msgDuplicateTransaction)
		case errors.Is(err, services.ErrBankRejected):
			sendErrorResponse(ctx, http.StatusBadRequest, msgBankRejected)
		default:
			log.Println("Order creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		}
		return
	}

	// Checkout succeeded, the server-side cart is done with.
	if err := newCartService().ClearCart(userID); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgOrderPlaced,
		"orderId": orderID,
	})
}

// GetMyOrders lists the authenticated customer's orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Println("Failed to fetch orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

type adminOrderRow struct {
	models.Order
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// GetOrders lists all orders with the customer's name and phone joined in.
// Admin only.
func GetOrders(ctx *gin.Context) {
	var rows []adminOrderRow
	result := initializers.DB.
		Table("orders").
		Select("orders.*, users.name AS customer_name, users.phone AS customer_phone").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Where("orders.deleted_at IS NULL").
		Order("orders.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		log.Println("Failed to fetch orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// UpdateOrderStatus partially updates status and/or paymentStatus. The two
// fields have independent lifecycles.
func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		OrderID       uint    `json:"orderId" binding:"required"`
		Status        *string `json:"status"`
		PaymentStatus *string `json:"paymentStatus"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "orderId is required")
		return
	}

	updates := map[string]any{}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.PaymentStatus != nil {
		updates["payment_status"] = *body.PaymentStatus
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	result := initializers.DB.Model(&models.Order{}).
		Where("id = ?", body.OrderID).
		Updates(updates)
	if result.Error != nil {
		log.Println("Failed to update order status:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order updated successfully"})
}
