package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

type User struct {
	gorm.Model
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:120" json:"name"`
	Role     string `gorm:"size:20;not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`

	Orders []Order `json:"-"`
}
