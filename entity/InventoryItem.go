package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem tracks back-of-house stock. Quantity is decimal because stock
// is counted in fractional units (kg, litres) as well as pieces.
type InventoryItem struct {
	gorm.Model
	Name         string          `gorm:"size:120;not null" json:"name"`
	Unit         string          `gorm:"size:20;not null" json:"unit"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3)" json:"quantity"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(12,3)" json:"reorderLevel"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(10,2)" json:"costPerUnit"`

	SupplierID *uint     `json:"supplierId,omitempty"`
	Supplier   *Supplier `json:"-"`
}
