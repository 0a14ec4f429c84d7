package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

func TestCanAccess(t *testing.T) {
	merchantID := uint(4)
	room := &models.ChatRoom{ID: 1, UserID: 10, MerchantID: &merchantID}
	support := &models.ChatRoom{ID: 2, UserID: 10, IsSupport: true}

	owner := auth.Identity{UserID: 20, Role: models.RoleMerchant}
	otherMerchant := auth.Identity{UserID: 21, Role: models.RoleMerchant}
	roomUser := auth.Identity{UserID: 10, Role: models.RoleUser}
	stranger := auth.Identity{UserID: 11, Role: models.RoleUser}
	admin := auth.Identity{UserID: 1, Role: models.RoleAdmin}

	assert.True(t, CanAccess(room, 20, roomUser))
	assert.True(t, CanAccess(room, 20, owner))
	assert.True(t, CanAccess(room, 20, admin))
	assert.False(t, CanAccess(room, 20, otherMerchant))
	assert.False(t, CanAccess(room, 20, stranger))

	assert.True(t, CanAccess(support, 0, roomUser))
	assert.True(t, CanAccess(support, 0, admin))
	assert.False(t, CanAccess(support, 0, owner))
	assert.False(t, CanAccess(support, 0, stranger))

	err := AssertAccess(room, 20, stranger)
	assert.True(t, httperr.IsBusiness(err, "not_room_participant"))
}

func TestNormalizeText(t *testing.T) {
	text, err := NormalizeText("  hello  ")
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = NormalizeText("   ")
	assert.True(t, httperr.IsBusiness(err, "empty_text"))

	_, err = NormalizeText(strings.Repeat("é", MaxTextLength+1))
	assert.True(t, httperr.IsBusiness(err, "text_too_long"))

	_, err = NormalizeText(strings.Repeat("é", MaxTextLength))
	assert.NoError(t, err)
}
