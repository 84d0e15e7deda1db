package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restopos/entity"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) Get(id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) List(supplierID uint) ([]entity.InventoryItem, error) {
	q := r.DB.Model(&entity.InventoryItem{})
	if supplierID != 0 {
		q = q.Where("supplier_id = ?", supplierID)
	}
	var out []entity.InventoryItem
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	return r.DB.Save(item).Error
}

func (r *InventoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.InventoryItem{}, id).Error
}

// AdjustStock applies a delta atomically; negative deltas that would take the
// quantity below zero are the caller's problem to validate first.
func (r *InventoryRepository) AdjustStock(id uint, delta decimal.Decimal) (int64, error) {
	res := r.DB.Model(&entity.InventoryItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

// ListBelowReorder feeds the inventory report.
func (r *InventoryRepository) ListBelowReorder() ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	err := r.DB.Where("quantity <= reorder_level").Order("name ASC").Find(&out).Error
	return out, err
}
