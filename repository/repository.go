package repository

import (
	"errors"

	"github.com/shreeambika/easyshop-api/models"
)

var (
	ErrDuplicateTransactionID = errors.New("transaction id already used")
	ErrProductNotFound        = errors.New("product not found")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrDuplicateUser          = errors.New("phone or email already registered")
	ErrUserNotFound           = errors.New("user not found")
)

type UserRepository interface {
	PhoneOrEmailExists(phone, email string) (bool, error)
	// Create maps a unique-index violation to ErrDuplicateUser, closing the
	// race left open by the existence pre-check.
	Create(user *models.User) error
	FindByPhone(phone string) (*models.User, error)
	FindByLookup(key models.LookupKey) (*models.User, error)
	UpdatePassword(userID uint, passwordHash string) error
}

type OrderRepository interface {
	// TransactionIDExists is the fast-path duplicate check. The unique
	// index enforced inside Create is the actual guarantee.
	TransactionIDExists(transactionID string) (bool, error)
	Create(order *models.Order) error
}

type SettingRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type ProductRepository interface {
	FindByID(id string) (*models.Product, error)
}

type CartRepository interface {
	GetOrCreate(userID int) (*models.Cart, error)
	FindItem(cartID uint, productID string) (*models.CartItem, error)
	SaveItem(item *models.CartItem) error
	DeleteItem(cartID uint, productID string) error
	ClearItems(cartID uint) error
}
