package chat

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/chat"
	"github.com/BruksfildServices01/laundry-marketplace/internal/dto"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type ListRooms struct {
	repo domain.Repository
}

func NewListRooms(repo domain.Repository) *ListRooms {
	return &ListRooms{repo: repo}
}

// Execute lists rooms by role: admins see every room, merchants the
// non-support rooms of merchants they own, users their own rooms.
func (uc *ListRooms) Execute(
	ctx context.Context,
	actor auth.Identity,
) ([]dto.RoomListDTO, error) {

	var (
		rooms []dto.RoomListDTO
		err   error
	)

	switch actor.Role {
	case models.RoleAdmin:
		rooms, err = uc.repo.ListAllRooms(ctx)
	case models.RoleMerchant:
		rooms, err = uc.repo.ListRoomsForOwner(ctx, actor.UserID)
	default:
		rooms, err = uc.repo.ListRoomsForUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	if rooms == nil {
		rooms = []dto.RoomListDTO{}
	}
	return rooms, nil
}
