package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Virus3D/invent/models"
)

// SeedAdmin creates the initial operator account if it does not exist yet.
// Skipped when no admin password is configured.
func SeedAdmin() {
	cfg := Get()
	if cfg.AdminPassword == "" {
		GetLogger().Info("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	err := DB.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		GetLogger().Errorf("admin seed lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		GetLogger().Errorf("admin seed hash failed: %v", err)
		return
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		GetLogger().Errorf("admin seed failed: %v", err)
		return
	}
	GetLogger().Infof("seeded admin account %q", cfg.AdminUsername)
}
