package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/shreeambika/easyshop-api/models"
	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) TransactionIDExists(transactionID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Order{}).
		Where("transaction_id = ?", transactionID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Create inserts the order inside a transaction. The duplicate re-check plus
// the unique index on transaction_id close the window between two concurrent
// submissions carrying the same ID.
func (r *gormOrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if order.TransactionID != nil {
			var count int64
			if err := tx.Model(&models.Order{}).
				Where("transaction_id = ?", *order.TransactionID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateTransactionID
			}
		}

		if err := tx.Create(order).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrDuplicateTransactionID
			}
			return err
		}
		return nil
	})
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
