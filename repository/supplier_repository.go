package repository

import (
	"gorm.io/gorm"

	"restopos/entity"
)

type SupplierRepository struct {
	DB *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	return r.DB.Create(s).Error
}

func (r *SupplierRepository) Get(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) List(onlyActive bool) ([]entity.Supplier, error) {
	q := r.DB.Model(&entity.Supplier{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var out []entity.Supplier
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	return r.DB.Save(s).Error
}

func (r *SupplierRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.Supplier{}).
		Where("id = ?", id).
		Update("active", false).Error
}
