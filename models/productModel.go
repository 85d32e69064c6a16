package models

import "time"

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	Name        string    `json:"name" binding:"required"`
	Price       float64   `json:"price"`
	Category    string    `json:"category" binding:"required"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Size        string    `json:"size,omitempty"`
	Thickness   string    `json:"thickness,omitempty"`
	ImageFit    string    `json:"imageFit,omitempty"`
	Popular     bool      `json:"popular,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category is static reference data, seeded on boot and never mutated at
// runtime.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;size:64"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
