package entity

import (
	"gorm.io/gorm"
)

// Table is a dining table. Status is stored but derived: it is written inside
// the same transaction as the order change that affects it, except RESERVED
// which is a manual staff state.
type Table struct {
	gorm.Model
	TableNumber int         `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Capacity    int         `gorm:"not null" json:"capacity"`
	Status      TableStatus `gorm:"size:20;not null" json:"status"`

	Orders []Order `json:"-"`
}
