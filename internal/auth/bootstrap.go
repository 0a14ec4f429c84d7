package auth

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// EnsureAdmin creates the admin account when no user with email exists.
// Admins cannot self-register, so this is how the first one appears.
func EnsureAdmin(ctx context.Context, gdb *gorm.DB, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}

	var existing models.User
	err := gdb.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !db.IsNotFound(err) {
		return false, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := gdb.WithContext(ctx).Create(&admin).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
