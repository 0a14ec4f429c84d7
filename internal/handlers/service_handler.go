package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// maxServicePrice keeps prices and order totals inside numeric(12,2).
var maxServicePrice = decimal.NewFromInt(1_000_000)

// validPrice accepts 0..maxServicePrice with at most two decimal places.
func validPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Equal(p.Round(2)) && p.LessThanOrEqual(maxServicePrice)
}

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	switch strings.TrimSpace(c.Query("active")) {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	services := []models.Service{}
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) ListByMerchant(c *gin.Context) {
	merchantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	services := []models.Service{}
	if err := h.db.WithContext(c.Request.Context()).
		Where("merchant_id = ?", merchantID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	merchantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}
	if !validPrice(*req.Price) {
		httperr.Handle(c, httperr.ErrBusiness("invalid_price"))
		return
	}

	who := actor(c)

	var m models.Merchant
	if err := h.db.WithContext(c.Request.Context()).First(&m, merchantID).Error; err != nil {
		if db.IsNotFound(err) {
			httperr.Handle(c, httperr.ErrNotFound("merchant_not_found"))
			return
		}
		httperr.Handle(c, err)
		return
	}
	if !who.CanManage(m.OwnerUserID) {
		httperr.Handle(c, httperr.ErrForbidden("not_merchant_owner"))
		return
	}

	svc := models.Service{
		MerchantID:  m.ID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Active:      true,
	}
	if err := h.db.WithContext(c.Request.Context()).Omit(clause.Associations).Create(&svc).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(who, "service_created", "service", svc.ID, map[string]any{
		"merchant_id": m.ID,
		"price":       svc.Price.StringFixed(2),
	}))

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Price != nil && !validPrice(*req.Price) {
		httperr.Handle(c, httperr.ErrBusiness("invalid_price"))
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		httperr.BadRequest(c, "invalid_request", "Name cannot be empty.")
		return
	}

	who := actor(c)

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Merchant").
		First(&svc, id).Error; err != nil {
		if db.IsNotFound(err) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Handle(c, err)
		return
	}
	if !who.CanManage(svc.Merchant.OwnerUserID) {
		httperr.Handle(c, httperr.ErrForbidden("not_merchant_owner"))
		return
	}

	ctx := c.Request.Context()

	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Active != nil {
		changes["active"] = *req.Active
	}

	if len(changes) > 0 {
		if err := h.db.WithContext(ctx).
			Model(&models.Service{}).
			Where("id = ?", svc.ID).
			Updates(changes).Error; err != nil {
			httperr.Handle(c, err)
			return
		}
	}

	var updated models.Service
	if err := h.db.WithContext(ctx).First(&updated, svc.ID).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	h.audit.Dispatch(auditEvent(who, "service_updated", "service", updated.ID, req))

	httpresp.OK(c, updated)
}
