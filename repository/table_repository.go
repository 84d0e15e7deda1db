package repository

import (
	"gorm.io/gorm"

	"restopos/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetTx(tx *gorm.DB, id uint) (*entity.Table, error) {
	var t entity.Table
	if err := tx.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) CountByNumber(number int, excludeID uint) (int64, error) {
	var cnt int64
	q := r.DB.Model(&entity.Table{}).Where("table_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

// UpdateStatus is the single table write the reconciler is allowed per event.
func (r *TableRepository) UpdateStatus(tx *gorm.DB, tableID uint, status entity.TableStatus) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Update("status", status).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}
