package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restopos/configs"
	"restopos/middlewares"
	"restopos/pkg/logger"
	"restopos/routes"
	"restopos/ws"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		zlog.Fatal("seed admin", zap.Error(err))
	}
	if err := configs.SeedDefaults(); err != nil {
		zlog.Fatal("seed defaults", zap.Error(err))
	}

	// kitchen display feed
	hub := ws.NewKitchenHub(zlog)
	go hub.Run()

	// HTTP
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, zlog, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server", zap.Error(err))
	}
}
