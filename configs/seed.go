package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"restopos/entity"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
		Active:   true,
	}
	return db.Create(&admin).Error
}

// SeedDefaults inserts the settings row and a starter floor plan. The settings
// upsert is ON CONFLICT DO NOTHING so concurrent starters cannot race.
func SeedDefaults() error {
	defaults := entity.DefaultSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return err
	}

	var tables int64
	db.Model(&entity.Table{}).Count(&tables)
	if tables == 0 {
		for n := 1; n <= 8; n++ {
			t := entity.Table{TableNumber: n, Capacity: 4, Status: entity.TableAvailable}
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}

	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Mains"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Drinks"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Desserts"})
	return nil
}
