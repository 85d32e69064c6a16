package repository

import (
	"errors"

	"github.com/shreeambika/easyshop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &gormSettingRepository{db: db}
}

// Get returns an empty string for an unset key; callers apply defaults.
func (r *gormSettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key_name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *gormSettingRepository) Set(key, value string) error {
	setting := models.Setting{KeyName: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
