package repository

import (
	"gorm.io/gorm"

	"restopos/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) List(onlyActive bool) ([]entity.Category, error) {
	q := r.DB.Model(&entity.Category{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var cats []entity.Category
	err := q.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) CountByName(name string, excludeID uint) (int64, error) {
	var cnt int64
	q := r.DB.Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.Category{}).
		Where("id = ?", id).
		Update("active", false).Error
}
