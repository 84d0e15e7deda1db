package entity

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name        string `gorm:"size:120;not null" json:"name"`
	ContactName string `gorm:"size:120" json:"contactName,omitempty"`
	Phone       string `gorm:"size:30" json:"phone,omitempty"`
	Email       string `gorm:"size:255" json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Active      bool   `gorm:"default:true" json:"active"`

	InventoryItems []InventoryItem `json:"-"`
}
