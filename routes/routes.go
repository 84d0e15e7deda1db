package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"restopos/configs"
	"restopos/controllers"
	"restopos/entity"
	"restopos/middlewares"
	"restopos/repository"
	"restopos/services"
	"restopos/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger, hub *ws.KitchenHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	tableSvc := services.NewTableService(tableRepo, orderRepo, logger)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, settingsRepo, tableSvc, logger)
	orderSvc.Events = hub
	supplierSvc := services.NewSupplierService(supplierRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo, supplierRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	reportSvc := services.NewReportService(reportRepo, inventoryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	supplierCtrl := controllers.NewSupplierController(supplierSvc)
	inventoryCtrl := controllers.NewInventoryController(inventorySvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	backOffice := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleManager)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	r.GET("/auth/me", auth, authCtrl.Me)

	// Staff accounts (admin)
	users := r.Group("/users", adminOnly)
	{
		users.POST("", authCtrl.CreateUser)
		users.GET("", authCtrl.ListUsers)
		users.PATCH("/:id/active", authCtrl.SetActive)
	}

	// Master data: reads for all staff, writes for back office
	r.GET("/categories", auth, categoryCtrl.List)
	r.GET("/categories/:id", auth, categoryCtrl.Detail)
	r.POST("/categories", backOffice, categoryCtrl.Create)
	r.PUT("/categories/:id", backOffice, categoryCtrl.Update)
	r.DELETE("/categories/:id", backOffice, categoryCtrl.Deactivate)

	r.GET("/menu-items", auth, menuCtrl.List)
	r.GET("/menu-items/:id", auth, menuCtrl.Detail)
	r.POST("/menu-items", backOffice, menuCtrl.Create)
	r.PUT("/menu-items/:id", backOffice, menuCtrl.Update)
	r.DELETE("/menu-items/:id", backOffice, menuCtrl.Deactivate)

	r.GET("/tables", auth, tableCtrl.List)
	r.GET("/tables/:id", auth, tableCtrl.Detail)
	r.PATCH("/tables/:id/status", auth, tableCtrl.SetStatus)
	r.POST("/tables", backOffice, tableCtrl.Create)
	r.PUT("/tables/:id", backOffice, tableCtrl.Update)
	r.DELETE("/tables/:id", backOffice, tableCtrl.Delete)

	r.GET("/suppliers", auth, supplierCtrl.List)
	r.GET("/suppliers/:id", auth, supplierCtrl.Detail)
	r.POST("/suppliers", backOffice, supplierCtrl.Create)
	r.PUT("/suppliers/:id", backOffice, supplierCtrl.Update)
	r.DELETE("/suppliers/:id", backOffice, supplierCtrl.Deactivate)

	r.GET("/inventory", auth, inventoryCtrl.List)
	r.GET("/inventory/:id", auth, inventoryCtrl.Detail)
	r.PATCH("/inventory/:id/stock", auth, inventoryCtrl.AdjustStock)
	r.POST("/inventory", backOffice, inventoryCtrl.Create)
	r.PUT("/inventory/:id", backOffice, inventoryCtrl.Update)
	r.DELETE("/inventory/:id", backOffice, inventoryCtrl.Delete)

	// Orders: any authenticated staff runs the floor
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.DELETE("/:id", orderCtrl.Cancel)
	}

	// Reports
	reports := r.Group("/reports", auth)
	{
		reports.GET("/top-items", reportCtrl.TopItems)
		reports.GET("/sales", reportCtrl.Sales)
		reports.GET("/inventory", reportCtrl.Inventory)
	}

	// Settings
	r.GET("/settings", auth, settingsCtrl.Get)
	r.PUT("/settings", backOffice, settingsCtrl.Update)

	// Kitchen display feed
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
