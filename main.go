package main

import (
	"github.com/Virus3D/invent/config"
	"github.com/Virus3D/invent/models"
	"github.com/Virus3D/invent/routes"
	"github.com/Virus3D/invent/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	config.ApplyLogLevel(cfg.LogLevel)
	logg := config.GetLogger()

	utils.SetSecret(cfg.JWTSecret)

	config.ConnectDB()

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.InventoryItem{},
		&models.MovementLog{},
		&models.BalanceHistory{},
		&models.Material{},
		&models.SoftwareLicense{},
	)
	if err != nil {
		logg.Fatalf("migration failed: %v", err)
	}

	config.SeedAdmin()

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	routes.SetupRoutes(r)

	logg.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatalf("server stopped: %v", err)
	}
}
