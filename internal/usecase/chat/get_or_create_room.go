package chat

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/chat"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// ======================================================
// MERCHANT ROOM
// ======================================================

type GetOrCreateRoom struct {
	repo domain.Repository
}

func NewGetOrCreateRoom(repo domain.Repository) *GetOrCreateRoom {
	return &GetOrCreateRoom{repo: repo}
}

// Execute returns the actor's room with merchantID, creating it on first
// contact. Repeated and concurrent calls yield the same room.
func (uc *GetOrCreateRoom) Execute(
	ctx context.Context,
	actor auth.Identity,
	merchantID uint,
) (*models.ChatRoom, error) {

	if merchantID == 0 {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	exists, err := uc.repo.MerchantExists(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("merchant_not_found")
	}

	return uc.repo.FindOrCreateRoom(ctx, actor.UserID, merchantID)
}

// ======================================================
// SUPPORT ROOM
// ======================================================

type GetOrCreateSupportRoom struct {
	repo domain.Repository
}

func NewGetOrCreateSupportRoom(repo domain.Repository) *GetOrCreateSupportRoom {
	return &GetOrCreateSupportRoom{repo: repo}
}

func (uc *GetOrCreateSupportRoom) Execute(
	ctx context.Context,
	actor auth.Identity,
) (*models.ChatRoom, error) {
	return uc.repo.FindOrCreateSupportRoom(ctx, actor.UserID)
}
