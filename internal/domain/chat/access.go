package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

const MaxTextLength = 4000

// CanAccess reports whether actor takes part in room. merchantOwnerID is
// the owner of the room's merchant and is ignored for support rooms.
//
// Participants are the room's user, the merchant owner for merchant rooms
// and every admin.
func CanAccess(room *models.ChatRoom, merchantOwnerID uint, actor auth.Identity) bool {
	if actor.IsAdmin() {
		return true
	}
	if room.UserID == actor.UserID {
		return true
	}
	if room.IsSupport || room.MerchantID == nil {
		return false
	}
	return actor.Role == models.RoleMerchant && merchantOwnerID == actor.UserID
}

func AssertAccess(room *models.ChatRoom, merchantOwnerID uint, actor auth.Identity) error {
	if !CanAccess(room, merchantOwnerID, actor) {
		return httperr.ErrForbidden("not_room_participant")
	}
	return nil
}

// NormalizeText trims the message and enforces the length limits.
func NormalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", httperr.ErrBusiness("empty_text")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", httperr.ErrBusiness("text_too_long")
	}
	return text, nil
}
