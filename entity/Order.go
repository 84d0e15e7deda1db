package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string    `gorm:"size:40;uniqueIndex" json:"orderNumber"`
	OrderType   OrderType `gorm:"size:20;not null" json:"orderType"`

	// Only set for dine-in orders. The table row outlives the order.
	TableID *uint  `json:"tableId,omitempty"`
	Table   *Table `json:"-"`

	CustomerName  string `gorm:"size:120" json:"customerName,omitempty"`
	CustomerPhone string `gorm:"size:30" json:"customerPhone,omitempty"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when staff detail is needed

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Status        OrderStatus    `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod *PaymentMethod `gorm:"size:20" json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus  `gorm:"size:20;not null" json:"paymentStatus"`

	Notes string `json:"notes,omitempty"`

	// Items live and die with the order.
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
