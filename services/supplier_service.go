package services

import (
	"errors"

	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type SupplierService struct {
	Repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

type SupplierIn struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
}

func (s *SupplierService) Create(in *SupplierIn) (*entity.Supplier, error) {
	sup := &entity.Supplier{
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		Active:      true,
	}
	if err := s.Repo.Create(sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *SupplierService) Get(id uint) (*entity.Supplier, error) {
	sup, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sup, nil
}

func (s *SupplierService) List(onlyActive bool) ([]entity.Supplier, error) {
	return s.Repo.List(onlyActive)
}

func (s *SupplierService) Update(id uint, in *SupplierIn) (*entity.Supplier, error) {
	sup, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	sup.Name = in.Name
	sup.ContactName = in.ContactName
	sup.Phone = in.Phone
	sup.Email = in.Email
	sup.Address = in.Address
	if err := s.Repo.Update(sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *SupplierService) Deactivate(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Deactivate(id)
}
