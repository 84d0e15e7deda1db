package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is a single-row table; SettingsID is the only key ever written.
const SettingsID uint = 1

type Settings struct {
	ID             uint            `gorm:"primarykey" json:"-"`
	RestaurantName string          `gorm:"size:120" json:"restaurantName"`
	Currency       string          `gorm:"size:10" json:"currency"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2)" json:"taxRate"`

	// When set, order discounts are clamped to the subtotal.
	EnforceDiscountCap bool `gorm:"default:true" json:"enforceDiscountCap"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		ID:                 SettingsID,
		RestaurantName:     "My Restaurant",
		Currency:           "USD",
		TaxRate:            decimal.NewFromInt(10),
		EnforceDiscountCap: true,
	}
}
