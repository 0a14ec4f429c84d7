package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/chat"
	"github.com/BruksfildServices01/laundry-marketplace/internal/dto"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

const roomColumns = "cr.id, cr.user_id, cr.merchant_id, cr.is_support, cr.created_at"

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

func (r *ChatGormRepository) MerchantExists(
	ctx context.Context,
	merchantID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Merchant{}).
		Where("id = ?", merchantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Rooms (get or create)
// --------------------------------------------------

func (r *ChatGormRepository) FindOrCreateRoom(
	ctx context.Context,
	userID uint,
	merchantID uint,
) (*models.ChatRoom, error) {

	return r.findOrCreate(ctx,
		func(q *gorm.DB) *gorm.DB {
			return q.Where("user_id = ? AND merchant_id = ? AND is_support = ?", userID, merchantID, false)
		},
		&models.ChatRoom{UserID: userID, MerchantID: &merchantID},
	)
}

func (r *ChatGormRepository) FindOrCreateSupportRoom(
	ctx context.Context,
	userID uint,
) (*models.ChatRoom, error) {

	return r.findOrCreate(ctx,
		func(q *gorm.DB) *gorm.DB {
			return q.Where("user_id = ? AND is_support = ?", userID, true)
		},
		&models.ChatRoom{UserID: userID, IsSupport: true},
	)
}

// findOrCreate looks the room up, inserts it with ON CONFLICT DO NOTHING when
// missing and re-reads on a lost race. The partial unique indexes on
// chat_rooms make the insert the serialization point.
func (r *ChatGormRepository) findOrCreate(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
	candidate *models.ChatRoom,
) (*models.ChatRoom, error) {

	var existing models.ChatRoom
	err := scope(r.db.WithContext(ctx)).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !db.IsNotFound(err) {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(candidate)
	if res.Error != nil && !db.IsUniqueViolation(res.Error) {
		return nil, res.Error
	}
	if res.Error == nil && res.RowsAffected > 0 && candidate.ID != 0 {
		return candidate, nil
	}

	existing = models.ChatRoom{}
	if err := scope(r.db.WithContext(ctx)).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// --------------------------------------------------
// Rooms (read)
// --------------------------------------------------

func (r *ChatGormRepository) GetRoom(
	ctx context.Context,
	roomID uint,
) (*models.ChatRoom, uint, error) {

	var room models.ChatRoom
	if err := r.db.WithContext(ctx).
		Preload("Merchant").
		First(&room, roomID).Error; err != nil {
		return nil, 0, err
	}

	var ownerID uint
	if room.Merchant != nil {
		ownerID = room.Merchant.OwnerUserID
	}
	return &room, ownerID, nil
}

func (r *ChatGormRepository) ListAllRooms(
	ctx context.Context,
) ([]dto.RoomListDTO, error) {

	var out []dto.RoomListDTO
	err := r.db.WithContext(ctx).
		Table("chat_rooms AS cr").
		Select(roomColumns + ", m.name AS merchant_name, m.image_url AS merchant_image_url, u.name AS user_name").
		Joins("LEFT JOIN merchants m ON cr.merchant_id = m.id").
		Joins("JOIN users u ON cr.user_id = u.id").
		Order("cr.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *ChatGormRepository) ListRoomsForOwner(
	ctx context.Context,
	ownerUserID uint,
) ([]dto.RoomListDTO, error) {

	var out []dto.RoomListDTO
	err := r.db.WithContext(ctx).
		Table("chat_rooms AS cr").
		Select(roomColumns+", m.name AS merchant_name, u.name AS user_name").
		Joins("JOIN merchants m ON cr.merchant_id = m.id").
		Joins("JOIN users u ON cr.user_id = u.id").
		Where("m.owner_user_id = ? AND cr.is_support = ?", ownerUserID, false).
		Order("cr.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *ChatGormRepository) ListRoomsForUser(
	ctx context.Context,
	userID uint,
) ([]dto.RoomListDTO, error) {

	var out []dto.RoomListDTO
	err := r.db.WithContext(ctx).
		Table("chat_rooms AS cr").
		Select(roomColumns+", m.name AS merchant_name, m.image_url AS merchant_image_url").
		Joins("LEFT JOIN merchants m ON cr.merchant_id = m.id").
		Where("cr.user_id = ?", userID).
		Order("cr.id ASC").
		Scan(&out).Error
	return out, err
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *ChatGormRepository) ListMessages(
	ctx context.Context,
	roomID uint,
) ([]models.Message, error) {

	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Compile-time check
var _ domain.Repository = (*ChatGormRepository)(nil)
