package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	"github.com/BruksfildServices01/laundry-marketplace/internal/dto"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
	"github.com/BruksfildServices01/laundry-marketplace/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	issuer *auth.TokenIssuer
	emails validators.DomainChecker
}

func NewAuthHandler(db *gorm.DB, issuer *auth.TokenIssuer, emails validators.DomainChecker) *AuthHandler {
	if emails == nil {
		emails = validators.AcceptAll{}
	}
	return &AuthHandler{db: db, issuer: issuer, emails: emails}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	role := models.RoleUser
	if r := strings.ToLower(strings.TrimSpace(req.Role)); r != "" {
		role = models.Role(r)
	}
	if role != models.RoleUser && role != models.RoleMerchant {
		httperr.Handle(c, httperr.ErrBusiness("invalid_role"))
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !h.emails.Valid(c.Request.Context(), email) {
		httperr.Handle(c, httperr.ErrBusiness("invalid_email_domain"))
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Handle(c, err)
		return
	}
	if count > 0 {
		httperr.Handle(c, httperr.ErrConflict("email_already_exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			httperr.Handle(c, httperr.ErrConflict("email_already_exists"))
			return
		}
		httperr.Handle(c, err)
		return
	}

	token, err := h.issuer.Issue(&user)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, AuthResponse{User: dto.UserFromModel(&user), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", validators.NormalizeEmail(req.Email)).
		First(&user).Error
	if err != nil && !db.IsNotFound(err) {
		httperr.Handle(c, err)
		return
	}
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.issuer.Issue(&user)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: dto.UserFromModel(&user), Token: token})
}
