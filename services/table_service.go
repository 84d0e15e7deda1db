package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type TableService struct {
	Repo      *repository.TableRepository
	OrderRepo *repository.OrderRepository
	Logger    *zap.Logger
}

func NewTableService(repo *repository.TableRepository, orderRepo *repository.OrderRepository, logger *zap.Logger) *TableService {
	return &TableService{Repo: repo, OrderRepo: orderRepo, Logger: logger}
}

// ---------------- CRUD ----------------

type TableIn struct {
	TableNumber int `json:"tableNumber" binding:"required,min=1"`
	Capacity    int `json:"capacity" binding:"required,min=1"`
}

func (s *TableService) Create(in *TableIn) (*entity.Table, error) {
	cnt, err := s.Repo.CountByNumber(in.TableNumber, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, fmt.Errorf("%w: table number %d", ErrConflict, in.TableNumber)
	}

	t := &entity.Table{
		TableNumber: in.TableNumber,
		Capacity:    in.Capacity,
		Status:      entity.TableAvailable,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Update(id uint, in *TableIn) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	cnt, err := s.Repo.CountByNumber(in.TableNumber, id)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, fmt.Errorf("%w: table number %d", ErrConflict, in.TableNumber)
	}

	t.TableNumber = in.TableNumber
	t.Capacity = in.Capacity
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	active, err := s.OrderRepo.CountActiveForTable(s.Repo.DB, id, 0)
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: table has active orders", ErrConflict)
	}
	return s.Repo.Delete(id)
}

// ---------------- Manual status ----------------

// SetStatus is the staff override. Only RESERVED and AVAILABLE can be set by
// hand; OCCUPIED is always derived from orders.
func (s *TableService) SetStatus(id uint, status entity.TableStatus) (*entity.Table, error) {
	if status != entity.TableReserved && status != entity.TableAvailable {
		return nil, fmt.Errorf("%w: only RESERVED or AVAILABLE can be set manually", ErrValidation)
	}
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if status == entity.TableAvailable {
		active, err := s.OrderRepo.CountActiveForTable(s.Repo.DB, id, 0)
		if err != nil {
			return nil, err
		}
		if active > 0 {
			return nil, fmt.Errorf("%w: table has active orders", ErrConflict)
		}
	}

	if err := s.Repo.UpdateStatus(s.Repo.DB, id, status); err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}

// ---------------- Reconciler ----------------

// Reconcile re-derives a table's status from its active orders. It runs inside
// the caller's transaction, after the order-status write, with the
// transitioning order excluded from the scan so the count reflects the write
// that just happened. RESERVED is never touched here. At most one table write
// happens per call.
func (s *TableService) Reconcile(tx *gorm.DB, tableID uint, excludeOrderID uint) error {
	t, err := s.Repo.GetTx(tx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // table deleted out from under the order; nothing to fix
		}
		return err
	}
	if t.Status == entity.TableReserved {
		return nil
	}

	active, err := s.OrderRepo.CountActiveForTable(tx, tableID, excludeOrderID)
	if err != nil {
		return err
	}

	want := entity.TableAvailable
	if active > 0 {
		want = entity.TableOccupied
	}
	if want == t.Status {
		return nil
	}

	if s.Logger != nil {
		s.Logger.Info("table status reconciled",
			zap.Uint("tableId", tableID),
			zap.String("from", string(t.Status)),
			zap.String("to", string(want)))
	}
	return s.Repo.UpdateStatus(tx, tableID, want)
}

// Seat marks a table OCCUPIED when a new dine-in order lands on it. Seating
// is the one action allowed to clear RESERVED.
func (s *TableService) Seat(tx *gorm.DB, tableID uint) error {
	t, err := s.Repo.GetTx(tx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if t.Status == entity.TableOccupied {
		return nil
	}
	return s.Repo.UpdateStatus(tx, tableID, entity.TableOccupied)
}
