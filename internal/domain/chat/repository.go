package chat

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/dto"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type Repository interface {
	MerchantExists(ctx context.Context, merchantID uint) (bool, error)

	// FindOrCreateRoom returns the merchant room for (userID, merchantID),
	// creating it when absent. Safe under concurrent first contact.
	FindOrCreateRoom(ctx context.Context, userID, merchantID uint) (*models.ChatRoom, error)
	// FindOrCreateSupportRoom is the support-room counterpart.
	FindOrCreateSupportRoom(ctx context.Context, userID uint) (*models.ChatRoom, error)

	// GetRoom returns the room and the owner of its merchant (0 for
	// support rooms).
	GetRoom(ctx context.Context, roomID uint) (*models.ChatRoom, uint, error)

	ListAllRooms(ctx context.Context) ([]dto.RoomListDTO, error)
	ListRoomsForOwner(ctx context.Context, ownerUserID uint) ([]dto.RoomListDTO, error)
	ListRoomsForUser(ctx context.Context, userID uint) ([]dto.RoomListDTO, error)

	ListMessages(ctx context.Context, roomID uint) ([]models.Message, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
}
