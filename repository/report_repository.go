package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restopos/entity"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// ReportLine is one order line joined with its current menu-item display data.
// Labels are read at aggregation time, not historically snapshotted.
type ReportLine struct {
	MenuItemID   uint
	Name         string
	CategoryName string
	Image        string
	Quantity     int
	Subtotal     decimal.Decimal
}

// settled orders: COMPLETED or READY, and actually paid
func settledOrders(q *gorm.DB, from, to time.Time) *gorm.DB {
	return q.Where("o.status IN ? AND o.payment_status = ?",
		[]entity.OrderStatus{entity.OrderCompleted, entity.OrderReady}, entity.PaymentPaid).
		Where("o.created_at >= ? AND o.created_at <= ?", from, to).
		Where("o.deleted_at IS NULL")
}

// FindSettledLines returns every line of every settled order in range, in
// insertion order. Aggregation happens in the service so money stays decimal
// and ties keep a stable order.
func (r *ReportRepository) FindSettledLines(from, to time.Time) ([]ReportLine, error) {
	var rows []ReportLine
	q := r.DB.Table("order_items AS oi").
		Select("oi.menu_item_id, mi.name, c.name AS category_name, mi.image, oi.quantity, oi.subtotal").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("LEFT JOIN categories c ON c.id = mi.category_id").
		Where("oi.deleted_at IS NULL")
	err := settledOrders(q, from, to).Order("oi.id ASC").Scan(&rows).Error
	return rows, err
}

type SettledOrder struct {
	CreatedAt time.Time
	Total     decimal.Decimal
}

func (r *ReportRepository) FindSettledOrders(from, to time.Time) ([]SettledOrder, error) {
	var rows []SettledOrder
	q := r.DB.Table("orders AS o").Select("o.created_at, o.total")
	err := settledOrders(q, from, to).Order("o.created_at ASC").Scan(&rows).Error
	return rows, err
}
