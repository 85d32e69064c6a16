package initializers

import (
	"log"

	"github.com/shreeambika/easyshop-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.Setting{},
		&models.Banner{},
	)
	if err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}
	log.Println("Database synced successfully.")

	SeedCatalog()
}
