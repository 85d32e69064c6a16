package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentMethodUPI = "UPI"
	PaymentMethodCOD = "Cash"

	OrderStatusPending = "Pending"

	PaymentStatusPending = "Pending"
	PaymentStatusSuccess = "Success"
)

type Order struct {
	gorm.Model
	UserID          int            `json:"userId"`
	Items           datatypes.JSON `json:"items"`
	TotalAmount     float64        `json:"totalAmount"`
	ShippingAddress string         `json:"shippingAddress"`
	City            string         `json:"city"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaymentStatus   string         `json:"paymentStatus"`
	TransactionID   *string        `json:"transactionId,omitempty" gorm:"uniqueIndex;size:64"`
	Status          string         `json:"status"`
}

// OrderItem is one entry of the serialized item list stored on an order.
type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func MarshalOrderItems(items []OrderItem) (datatypes.JSON, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
