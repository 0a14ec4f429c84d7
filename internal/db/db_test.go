package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	gdb, err := Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	// idempotent
	require.NoError(t, Migrate(gdb))

	user := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, gdb.Create(&user).Error)

	dup := models.User{Name: "Ana 2", Email: "ana@example.com", PasswordHash: "x", Role: models.RoleUser}
	err = gdb.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestSupportRoomUniqueIndex(t *testing.T) {
	gdb, err := OpenSQLite(filepath.Join(t.TempDir(), "rooms.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))

	user := models.User{Name: "Bo", Email: "bo@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, gdb.Create(&user).Error)

	require.NoError(t, gdb.Create(&models.ChatRoom{UserID: user.ID, IsSupport: true}).Error)
	err = gdb.Create(&models.ChatRoom{UserID: user.ID, IsSupport: true}).Error
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("get: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}
