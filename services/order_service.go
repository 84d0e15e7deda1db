package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	MenuRepo     *repository.MenuRepository
	SettingsRepo *repository.SettingsRepository
	Tables       *TableService
	Logger       *zap.Logger
	Events       EventPublisher // optional; nil when no kitchen display is attached
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	settingsRepo *repository.SettingsRepository,
	tables *TableService,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		MenuRepo:     menuRepo,
		SettingsRepo: settingsRepo,
		Tables:       tables,
		Logger:       logger,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	OrderType     entity.OrderType `json:"orderType" binding:"required"`
	TableID       *uint            `json:"tableId"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Items         []OrderItemIn    `json:"items" binding:"required,min=1,dive"`
	Discount      decimal.Decimal  `json:"discount"`
	DeliveryFee   decimal.Decimal  `json:"deliveryFee"`
	PaymentMethod *entity.PaymentMethod `json:"paymentMethod"`
	Notes         string           `json:"notes"`
}

// ----- Create -----

// Create prices the order from current menu data, persists the order and its
// items in one transaction, and seats the table for dine-in.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if !req.OrderType.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", ErrValidation, req.OrderType)
	}
	if req.OrderType == entity.OrderDineIn && req.TableID == nil {
		return nil, fmt.Errorf("%w: dine-in orders need a table", ErrValidation)
	}
	if req.OrderType != entity.OrderDineIn {
		req.TableID = nil
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, *req.PaymentMethod)
	}

	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}

	// Snapshot menu prices into the lines; later menu edits must not touch
	// this order.
	lines := make([]PriceLine, 0, len(req.Items))
	for _, it := range req.Items {
		m, err := s.MenuRepo.GetBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, it.MenuItemID)
			}
			return nil, err
		}
		if !m.Available {
			return nil, fmt.Errorf("%w: %q is not available", ErrValidation, m.Name)
		}
		lines = append(lines, PriceLine{MenuItemID: m.ID, Quantity: it.Quantity, UnitPrice: m.Price})
	}

	deliveryFee := decimal.Zero
	if req.OrderType == entity.OrderDelivery {
		deliveryFee = req.DeliveryFee
	}
	breakdown, err := CalculatePrice(lines, settings.TaxRate, req.Discount, deliveryFee, settings.EnforceDiscountCap)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		OrderNumber:   generateOrderNumber(),
		OrderType:     req.OrderType,
		TableID:       req.TableID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		UserID:        userID,
		Subtotal:      breakdown.Subtotal,
		Tax:           breakdown.Tax,
		Discount:      breakdown.Discount,
		DeliveryFee:   breakdown.DeliveryFee,
		Total:         breakdown.Total,
		Status:        entity.OrderPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: entity.PaymentUnpaid,
		Notes:         req.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableID != nil {
			if err := s.Tables.Seat(tx, *req.TableID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return fmt.Errorf("%w: table %d", ErrNotFound, *req.TableID)
				}
				return err
			}
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i, l := range lines {
			oi := entity.OrderItem{
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Subtotal:   LineSubtotal(l.Quantity, l.UnitPrice),
				Notes:      req.Items[i].Notes,
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order created",
		zap.Uint("orderId", order.ID),
		zap.String("orderNumber", order.OrderNumber),
		zap.String("total", order.Total.StringFixed(2)))
	s.publish("order.created", &order)
	return &order, nil
}

// Order numbers are date-prefixed with a random suffix; the unique index on
// the column turns the (negligible) collision chance into a clean conflict.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("POS-%s-%s", time.Now().Format("20060102"), suffix)
}

// ----- Read -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (s *OrderService) List(f repository.OrderFilter) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListOrders(f)
}

// ----- Lifecycle -----

// UpdateStatus moves an order along PENDING -> PREPARING -> READY ->
// COMPLETED, or to CANCELLED from any active state. Re-issuing the current
// status is a no-op so retries stay safe; everything else outside the
// transition table is rejected. Entering COMPLETED settles the bill, and
// entering either terminal state re-derives the table's occupancy inside the
// same transaction.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	var (
		out     *entity.Order
		changed bool
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if o.Status == to {
			out = o // idempotent retry
			return nil
		}
		if !transitionAllowed(o.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			// a concurrent writer moved the order first; re-read and classify
			cur, err := s.Repo.GetOrderTx(tx, orderID)
			if err != nil {
				return err
			}
			if cur.Status == to {
				out = cur
				return nil
			}
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, to)
		}
		o.Status = to
		changed = true

		if settleAfter(to) && o.PaymentStatus != entity.PaymentPaid {
			if err := s.Repo.UpdatePaymentStatus(tx, o.ID, entity.PaymentPaid); err != nil {
				return err
			}
			o.PaymentStatus = entity.PaymentPaid
		}
		if reconcileAfter(to) && o.TableID != nil {
			if err := s.Tables.Reconcile(tx, *o.TableID, o.ID); err != nil {
				return err
			}
		}

		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.Logger.Info("order status changed",
			zap.Uint("orderId", out.ID),
			zap.String("status", string(to)))
		s.publish("order.status", out)
	}
	return out, nil
}

// Cancel is the DELETE path; it is exactly a transition into CANCELLED, so an
// already-cancelled order is a no-op and a completed one is rejected.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	return s.UpdateStatus(orderID, entity.OrderCancelled)
}

func (s *OrderService) publish(kind string, o *entity.Order) {
	if s.Events == nil {
		return
	}
	s.Events.PublishOrderEvent(OrderEvent{
		Kind:        kind,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		OrderType:   o.OrderType,
		TableID:     o.TableID,
		Status:      o.Status,
		At:          time.Now(),
	})
}
