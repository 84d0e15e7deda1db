package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	cnt, err := s.Repo.CountByName(name, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, fmt.Errorf("%w: category %q", ErrConflict, name)
	}

	cat := &entity.Category{Name: name, Description: in.Description, Active: true}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	cat, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) List(onlyActive bool) ([]entity.Category, error) {
	return s.Repo.List(onlyActive)
}

func (s *CategoryService) Update(id uint, in *CategoryIn) (*entity.Category, error) {
	cat, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	cnt, err := s.Repo.CountByName(name, id)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, fmt.Errorf("%w: category %q", ErrConflict, name)
	}

	cat.Name = name
	cat.Description = in.Description
	if err := s.Repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Deactivate(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Deactivate(id)
}
