package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/dto"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type AddAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	profile, err := h.profile(c, actor(c).UserID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, profile)
}

func (h *MeHandler) AddAddress(c *gin.Context) {
	var req AddAddressRequest
	if !bindJSON(c, &req) {
		return
	}

	text := strings.TrimSpace(req.Address)
	if text == "" {
		httperr.BadRequest(c, "invalid_request", "Address is required.")
		return
	}

	userID := actor(c).UserID
	addr := models.Address{UserID: userID, Text: text}
	if err := h.db.WithContext(c.Request.Context()).Create(&addr).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	profile, err := h.profile(c, userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, profile)
}

func (h *MeHandler) profile(c *gin.Context, userID uint) (*dto.ProfileDTO, error) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&user, userID).Error; err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(user.Addresses))
	for _, a := range user.Addresses {
		addresses = append(addresses, a.Text)
	}

	return &dto.ProfileDTO{
		UserDTO:   dto.UserFromModel(&user),
		Addresses: addresses,
	}, nil
}
