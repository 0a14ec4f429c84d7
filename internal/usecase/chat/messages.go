package chat

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/chat"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/metrics"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// loadRoom resolves the room and checks that actor takes part in it.
func loadRoom(
	ctx context.Context,
	repo domain.Repository,
	actor auth.Identity,
	roomID uint,
) (*models.ChatRoom, error) {

	room, ownerID, err := repo.GetRoom(ctx, roomID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, httperr.ErrNotFound("room_not_found")
		}
		return nil, err
	}

	if err := domain.AssertAccess(room, ownerID, actor); err != nil {
		return nil, err
	}
	return room, nil
}

// ======================================================
// LIST
// ======================================================

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(
	ctx context.Context,
	actor auth.Identity,
	roomID uint,
) ([]models.Message, error) {

	room, err := loadRoom(ctx, uc.repo, actor, roomID)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListMessages(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// ======================================================
// POST
// ======================================================

type PostMessage struct {
	repo domain.Repository
}

func NewPostMessage(repo domain.Repository) *PostMessage {
	return &PostMessage{repo: repo}
}

func (uc *PostMessage) Execute(
	ctx context.Context,
	actor auth.Identity,
	roomID uint,
	text string,
) (*models.Message, error) {

	room, err := loadRoom(ctx, uc.repo, actor, roomID)
	if err != nil {
		return nil, err
	}

	text, err = domain.NormalizeText(text)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		RoomID:       room.ID,
		SenderUserID: actor.UserID,
		Text:         text,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	metrics.ChatMessagePosted()
	return msg, nil
}
