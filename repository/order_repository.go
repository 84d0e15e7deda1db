package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restopos/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// ---------------- Listing ----------------

type OrderFilter struct {
	Status    entity.OrderStatus
	OrderType entity.OrderType
	TableID   uint
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

type OrderSummary struct {
	ID            uint                 `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	OrderType     entity.OrderType     `json:"orderType"`
	TableID       *uint                `json:"tableId,omitempty"`
	Total         decimal.Decimal      `json:"total"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(f OrderFilter) ([]OrderSummary, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OrderType != "" {
		q = q.Where("order_type = ?", f.OrderType)
	}
	if f.TableID != 0 {
		q = q.Where("table_id = ?", f.TableID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, order_number, order_type, table_id, total, status, payment_status, created_at").
		Order("id DESC").Limit(f.Limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// ---------------- Status ----------------

// UpdateStatusGuard flips the status only when the row is still in the
// expected state; the affected-row count is the concurrency guard.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID uint, status entity.PaymentStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status).Error
}

func (r *OrderRepository) SetPaymentMethod(tx *gorm.DB, orderID uint, method entity.PaymentMethod) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_method", method).Error
}

// ---------------- Table occupancy ----------------

// CountActiveForTable counts non-terminal orders seated at the table,
// excluding the order currently transitioning so the caller sees its own
// write rather than the stale row.
func (r *OrderRepository) CountActiveForTable(tx *gorm.DB, tableID uint, excludeOrderID uint) (int64, error) {
	var cnt int64
	q := tx.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, entity.ActiveOrderStatuses)
	if excludeOrderID != 0 {
		q = q.Where("id <> ?", excludeOrderID)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) ListActiveForTable(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("table_id = ? AND status IN ?", tableID, entity.ActiveOrderStatuses).
		Order("id ASC").Find(&orders).Error
	return orders, err
}
