package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `gorm:"default:true" json:"active"`

	MenuItems []MenuItem `json:"-"`
}
