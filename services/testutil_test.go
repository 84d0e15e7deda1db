package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restopos/entity"
	"restopos/repository"
	"restopos/services"
)

// setupDB opens a fresh in-memory database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Supplier{}, &entity.InventoryItem{},
		&entity.Settings{},
	))
	return db
}

type fixture struct {
	DB       *gorm.DB
	Orders   *services.OrderService
	Tables   *services.TableService
	Reports  *services.ReportService
	Settings *services.SettingsService
}

func setupServices(t *testing.T) *fixture {
	t.Helper()
	db := setupDB(t)

	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	logger := zap.NewNop()
	tables := services.NewTableService(tableRepo, orderRepo, logger)
	orders := services.NewOrderService(db, orderRepo, menuRepo, settingsRepo, tables, logger)

	return &fixture{
		DB:       db,
		Orders:   orders,
		Tables:   tables,
		Reports:  services.NewReportService(reportRepo, inventoryRepo),
		Settings: services.NewSettingsService(settingsRepo),
	}
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string) *entity.MenuItem {
	t.Helper()
	var cat entity.Category
	require.NoError(t, db.FirstOrCreate(&cat, entity.Category{Name: "Mains"}).Error)

	m := &entity.MenuItem{
		Name:       name,
		Price:      mustDec(t, price),
		CategoryID: cat.ID,
		Available:  true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedTable(t *testing.T, db *gorm.DB, number int) *entity.Table {
	t.Helper()
	tbl := &entity.Table{TableNumber: number, Capacity: 4, Status: entity.TableAvailable}
	require.NoError(t, db.Create(tbl).Error)
	return tbl
}

func tableStatus(t *testing.T, db *gorm.DB, id uint) entity.TableStatus {
	t.Helper()
	var tbl entity.Table
	require.NoError(t, db.First(&tbl, id).Error)
	return tbl.Status
}
