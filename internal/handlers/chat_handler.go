package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	ucChat "github.com/BruksfildServices01/laundry-marketplace/internal/usecase/chat"
)

type ChatHandler struct {
	room         *ucChat.GetOrCreateRoom
	supportRoom  *ucChat.GetOrCreateSupportRoom
	listRooms    *ucChat.ListRooms
	listMessages *ucChat.ListMessages
	postMessage  *ucChat.PostMessage
}

func NewChatHandler(
	room *ucChat.GetOrCreateRoom,
	supportRoom *ucChat.GetOrCreateSupportRoom,
	listRooms *ucChat.ListRooms,
	listMessages *ucChat.ListMessages,
	postMessage *ucChat.PostMessage,
) *ChatHandler {
	return &ChatHandler{
		room:         room,
		supportRoom:  supportRoom,
		listRooms:    listRooms,
		listMessages: listMessages,
		postMessage:  postMessage,
	}
}

// --------- Requests ---------

type CreateRoomRequest struct {
	MerchantID uint `json:"merchant_id" binding:"required"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

// --------- Handlers ---------

func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.room.Execute(c.Request.Context(), actor(c), req.MerchantID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, room)
}

func (h *ChatHandler) SupportRoom(c *gin.Context) {
	room, err := h.supportRoom.Execute(c.Request.Context(), actor(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, room)
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	rooms, err := h.listRooms.Execute(c.Request.Context(), actor(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, rooms)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	msgs, err := h.listMessages.Execute(c.Request.Context(), actor(c), roomID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, msgs)
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.postMessage.Execute(c.Request.Context(), actor(c), roomID, req.Text)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, msg)
}
