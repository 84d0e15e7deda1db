package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type InventoryService struct {
	Repo         *repository.InventoryRepository
	SupplierRepo *repository.SupplierRepository
}

func NewInventoryService(repo *repository.InventoryRepository, supRepo *repository.SupplierRepository) *InventoryService {
	return &InventoryService{Repo: repo, SupplierRepo: supRepo}
}

type InventoryItemIn struct {
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	SupplierID   *uint           `json:"supplierId"`
}

func (s *InventoryService) validate(in *InventoryItemIn) error {
	if in.Quantity.IsNegative() || in.ReorderLevel.IsNegative() || in.CostPerUnit.IsNegative() {
		return fmt.Errorf("%w: quantities and cost must not be negative", ErrValidation)
	}
	if in.SupplierID != nil {
		if _, err := s.SupplierRepo.Get(*in.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: supplier %d", ErrNotFound, *in.SupplierID)
			}
			return err
		}
	}
	return nil
}

func (s *InventoryService) Create(in *InventoryItemIn) (*entity.InventoryItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	item := &entity.InventoryItem{
		Name:         in.Name,
		Unit:         in.Unit,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		CostPerUnit:  in.CostPerUnit,
		SupplierID:   in.SupplierID,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Get(id uint) (*entity.InventoryItem, error) {
	item, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) List(supplierID uint) ([]entity.InventoryItem, error) {
	return s.Repo.List(supplierID)
}

func (s *InventoryService) Update(id uint, in *InventoryItemIn) (*entity.InventoryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Unit = in.Unit
	item.Quantity = in.Quantity
	item.ReorderLevel = in.ReorderLevel
	item.CostPerUnit = in.CostPerUnit
	item.SupplierID = in.SupplierID
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// AdjustStock applies a signed delta (receiving stock or recording usage).
func (s *InventoryService) AdjustStock(id uint, delta decimal.Decimal) (*entity.InventoryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Quantity.Add(delta).IsNegative() {
		return nil, fmt.Errorf("%w: stock cannot go below zero", ErrValidation)
	}
	if _, err := s.Repo.AdjustStock(id, delta); err != nil {
		return nil, err
	}
	return s.Get(id)
}
