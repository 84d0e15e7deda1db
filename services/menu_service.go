package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type MenuService struct {
	Repo         *repository.MenuRepository
	CategoryRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CategoryRepo: catRepo}
}

type MenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Available   *bool           `json:"available"`
}

func (s *MenuService) validate(in *MenuItemIn) error {
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if _, err := s.CategoryRepo.Get(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, in.CategoryID)
		}
		return err
	}
	return nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		Available:   true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) List(categoryID uint, onlyAvailable bool) ([]entity.MenuItem, error) {
	return s.Repo.List(categoryID, onlyAvailable)
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	m.Name = in.Name
	m.Description = in.Description
	m.Price = in.Price
	m.Image = in.Image
	m.CategoryID = in.CategoryID
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Deactivate instead of delete: past order items keep their reference.
func (s *MenuService) Deactivate(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Deactivate(id)
}
