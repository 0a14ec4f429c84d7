package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/cache"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
	"github.com/BruksfildServices01/laundry-marketplace/internal/storage"
)

const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

type MerchantHandler struct {
	db     *gorm.DB
	cache  cache.MerchantCache
	images storage.ImageStore
	audit  *audit.Dispatcher
}

func NewMerchantHandler(
	db *gorm.DB,
	merchantCache cache.MerchantCache,
	images storage.ImageStore,
	audit *audit.Dispatcher,
) *MerchantHandler {
	if merchantCache == nil {
		merchantCache = cache.Nop{}
	}
	return &MerchantHandler{
		db:     db,
		cache:  merchantCache,
		images: images,
		audit:  audit,
	}
}

// --------- Requests ---------

type UpdateMerchantRequest struct {
	Name       *string  `json:"name"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Rating     *float64 `json:"rating"`
	PriceRange *string  `json:"price_range"`
	ETA        *string  `json:"eta"`
	ImageURL   *string  `json:"image_url"`
	Hours      *string  `json:"hours"`
}

func (r UpdateMerchantRequest) validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return httperr.ErrBusiness("invalid_request")
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		return httperr.ErrBusiness("invalid_coordinates")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		return httperr.ErrBusiness("invalid_coordinates")
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

// changes maps only the fields present in the request to their columns, so
// columns the caller did not send are never written.
func (r UpdateMerchantRequest) changes() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Latitude != nil {
		out["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		out["longitude"] = *r.Longitude
	}
	if r.Rating != nil {
		out["rating"] = *r.Rating
	}
	if r.PriceRange != nil {
		out["price_range"] = *r.PriceRange
	}
	if r.ETA != nil {
		out["eta"] = *r.ETA
	}
	if r.ImageURL != nil {
		out["image_url"] = *r.ImageURL
	}
	if r.Hours != nil {
		out["hours"] = *r.Hours
	}
	return out
}

// --------- Handlers ---------

func (h *MerchantHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.cache.GetList(ctx); ok {
		httpresp.OK(c, cached)
		return
	}

	merchants := []models.Merchant{}
	if err := h.db.WithContext(ctx).Order("id ASC").Find(&merchants).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	h.cache.SetList(ctx, merchants)
	httpresp.OK(c, merchants)
}

func (h *MerchantHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, id); ok {
		httpresp.OK(c, cached)
		return
	}

	var m models.Merchant
	if err := h.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if db.IsNotFound(err) {
			httperr.Handle(c, httperr.ErrNotFound("merchant_not_found"))
			return
		}
		httperr.Handle(c, err)
		return
	}

	h.cache.Set(ctx, &m)
	httpresp.OK(c, m)
}

func (h *MerchantHandler) ListMine(c *gin.Context) {
	merchants := []models.Merchant{}
	if err := h.db.WithContext(c.Request.Context()).
		Where("owner_user_id = ?", actor(c).UserID).
		Order("id ASC").
		Find(&merchants).Error; err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, merchants)
}

func (h *MerchantHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateMerchantRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		httperr.Handle(c, err)
		return
	}

	who := actor(c)
	m, err := h.loadManaged(c, who, id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	ctx := c.Request.Context()

	if changes := req.changes(); len(changes) > 0 {
		if err := h.db.WithContext(ctx).
			Model(&models.Merchant{}).
			Where("id = ?", m.ID).
			Updates(changes).Error; err != nil {
			httperr.Handle(c, err)
			return
		}
	}

	var updated models.Merchant
	if err := h.db.WithContext(ctx).First(&updated, m.ID).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	h.cache.Invalidate(ctx, updated.ID)
	h.audit.Dispatch(auditEvent(who, "merchant_updated", "merchant", updated.ID, req))

	httpresp.OK(c, updated)
}

// UploadImage stores a multipart "image" in object storage and points the
// merchant's image_url at it.
func (h *MerchantHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	who := actor(c)
	m, err := h.loadManaged(c, who, id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Handle(c, httperr.ErrBusiness("missing_image"))
		return
	}
	if fh.Size > MaxImageSize {
		httperr.Handle(c, httperr.ErrBusiness("image_too_large"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	if len(body) > MaxImageSize {
		httperr.Handle(c, httperr.ErrBusiness("image_too_large"))
		return
	}

	contentType := http.DetectContentType(body)
	ext, ok := imageExtensions[contentType]
	if !ok {
		httperr.Handle(c, httperr.ErrBusiness("invalid_image_type"))
		return
	}

	url, err := h.images.Put(c.Request.Context(), fmt.Sprintf("merchants/%d", m.ID), ext, contentType, body)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(m).
		Update("image_url", url).Error; err != nil {
		httperr.Handle(c, err)
		return
	}
	m.ImageURL = url

	h.cache.Invalidate(c.Request.Context(), m.ID)
	h.audit.Dispatch(auditEvent(who, "merchant_image_updated", "merchant", m.ID, map[string]any{
		"url":  url,
		"size": len(body),
	}))

	httpresp.OK(c, m)
}

// loadManaged returns the merchant when who may change it.
func (h *MerchantHandler) loadManaged(c *gin.Context, who auth.Identity, id uint) (*models.Merchant, error) {
	var m models.Merchant
	if err := h.db.WithContext(c.Request.Context()).First(&m, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, httperr.ErrNotFound("merchant_not_found")
		}
		return nil, err
	}
	if !who.CanManage(m.OwnerUserID) {
		return nil, httperr.ErrForbidden("not_merchant_owner")
	}
	return &m, nil
}
