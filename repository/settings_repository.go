package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restopos/entity"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton row, lazily creating the defaults. The insert is
// ON CONFLICT DO NOTHING so two first-readers cannot both win.
func (r *SettingsRepository) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.DB.First(&s, entity.SettingsID).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	defaults := entity.DefaultSettings()
	if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return nil, err
	}
	if err := r.DB.First(&s, entity.SettingsID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(s *entity.Settings) error {
	s.ID = entity.SettingsID
	return r.DB.Save(s).Error
}
