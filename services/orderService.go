package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
)

var (
	ErrMissingFields        = errors.New("missing required order fields")
	ErrInvalidTransactionID = errors.New("invalid transaction id format")
	ErrBankRejected         = errors.New("bank rejected the transaction")
)

// BankVerifier checks a claimed UPI payment against the receiving UPI ID.
type BankVerifier interface {
	VerifyUPI(ctx context.Context, upiID, transactionID string) error
}

type CreateOrderInput struct {
	UserID          int                `json:"user_id"`
	Items           []models.OrderItem `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	ShippingAddress string             `json:"shipping_address"`
	City            string             `json:"city"`
	PaymentMethod   string             `json:"payment_method"`
	TransactionID   string             `json:"transaction_id"`
}

type OrderService struct {
	orders   repository.OrderRepository
	settings repository.SettingRepository
	bank     BankVerifier
}

func NewOrderService(orders repository.OrderRepository, settings repository.SettingRepository, bank BankVerifier) *OrderService {
	return &OrderService{orders: orders, settings: settings, bank: bank}
}

// CreateOrder runs the checkout validation sequence and persists the order.
// Each step short-circuits with its own error; nothing is written until every
// check has passed.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (uint, error) {
	if input.UserID == 0 || len(input.Items) == 0 || input.TotalAmount <= 0 ||
		strings.TrimSpace(input.ShippingAddress) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.PaymentMethod) == "" {
		return 0, ErrMissingFields
	}

	isUPI := strings.EqualFold(input.PaymentMethod, models.PaymentMethodUPI)
	transactionID := strings.TrimSpace(input.TransactionID)

	if isUPI && len(transactionID) < 12 {
		return 0, ErrInvalidTransactionID
	}

	if transactionID != "" {
		exists, err := s.orders.TransactionIDExists(transactionID)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, repository.ErrDuplicateTransactionID
		}
	}

	paymentStatus := models.PaymentStatusPending
	if isUPI {
		upiID, err := s.settings.Get(models.SettingUPIID)
		if err != nil {
			return 0, err
		}
		if upiID == "" {
			upiID = DefaultUPIID
		}
		if err := s.bank.VerifyUPI(ctx, upiID, transactionID); err != nil {
			return 0, err
		}
		paymentStatus = models.PaymentStatusSuccess
	}

	items, err := models.MarshalOrderItems(input.Items)
	if err != nil {
		return 0, err
	}

	order := models.Order{
		UserID:          input.UserID,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		City:            input.City,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		Status:          models.OrderStatusPending,
	}
	if transactionID != "" {
		order.TransactionID = &transactionID
	}

	if err := s.orders.Create(&order); err != nil {
		return 0, err
	}
	return order.ID, nil
}
