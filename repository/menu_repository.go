package repository

import (
	"gorm.io/gorm"

	"restopos/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads just what order creation needs to price a line.
func (r *MenuRepository) GetBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, name, price, available").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) List(categoryID uint, onlyAvailable bool) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}
	var items []entity.MenuItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

// Deactivate soft-hides the item; order history keeps referencing it.
func (r *MenuRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", false).Error
}
