package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"restopos/entity"
	"restopos/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// Get never 404s: the singleton row is created with defaults on first read.
func (s *SettingsService) Get() (*entity.Settings, error) {
	return s.Repo.Get()
}

type SettingsIn struct {
	RestaurantName     string          `json:"restaurantName" binding:"required"`
	Currency           string          `json:"currency" binding:"required"`
	TaxRate            decimal.Decimal `json:"taxRate"`
	EnforceDiscountCap bool            `json:"enforceDiscountCap"`
}

func (s *SettingsService) Update(in *SettingsIn) (*entity.Settings, error) {
	if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: tax rate must be between 0 and 100", ErrValidation)
	}

	current, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	current.RestaurantName = strings.TrimSpace(in.RestaurantName)
	current.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	current.TaxRate = in.TaxRate
	current.EnforceDiscountCap = in.EnforceDiscountCap

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}
