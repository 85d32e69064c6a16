package models

// Banner is the promotional offer strip shown at the top of the storefront.
// A single row, toggled and recolored from the admin panel.
type Banner struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	Text    string `json:"text"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}
