package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

var seq atomic.Uint64

// User inserts a user with the given role and a unique email.
func User(t testing.TB, gdb *gorm.DB, role models.Role) *models.User {
	t.Helper()

	n := seq.Add(1)
	u := &models.User{
		Name:         fmt.Sprintf("%s %d", role, n),
		Email:        fmt.Sprintf("%s%d@example.com", role, n),
		PasswordHash: "x",
		Role:         role,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func Merchant(t testing.TB, gdb *gorm.DB, owner *models.User) *models.Merchant {
	t.Helper()

	m := &models.Merchant{
		OwnerUserID: owner.ID,
		Name:        fmt.Sprintf("Laundry %d", seq.Add(1)),
		Latitude:    -23.55,
		Longitude:   -46.63,
		Rating:      4.5,
		PriceRange:  "$$",
		ETA:         "24h",
		Hours:       "08:00-18:00",
	}
	if err := gdb.Omit("Owner").Create(m).Error; err != nil {
		t.Fatalf("create merchant: %v", err)
	}
	return m
}

func Service(t testing.TB, gdb *gorm.DB, m *models.Merchant, name string, price string) *models.Service {
	t.Helper()

	s := &models.Service{
		MerchantID: m.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Active:     true,
	}
	if err := gdb.Omit("Merchant").Create(s).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}
