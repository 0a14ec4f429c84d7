package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httpresp"
	ucOrder "github.com/BruksfildServices01/laundry-marketplace/internal/usecase/order"
)

type OrderHandler struct {
	create       *ucOrder.CreateOrder
	list         *ucOrder.ListOrders
	get          *ucOrder.GetOrder
	updateStatus *ucOrder.UpdateOrderStatus
}

func NewOrderHandler(
	create *ucOrder.CreateOrder,
	list *ucOrder.ListOrders,
	get *ucOrder.GetOrder,
	updateStatus *ucOrder.UpdateOrderStatus,
) *OrderHandler {
	return &OrderHandler{
		create:       create,
		list:         list,
		get:          get,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	ServiceID uint `json:"service_id"`
	Qty       *int `json:"qty"`
}

type CreateOrderRequest struct {
	MerchantID uint               `json:"merchant_id" binding:"required"`
	Items      []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]domain.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ItemInput{ServiceID: it.ServiceID, Qty: it.Qty})
	}

	o, err := h.create.Execute(c.Request.Context(), ucOrder.CreateOrderInput{
		Actor:      actor(c),
		MerchantID: req.MerchantID,
		Items:      items,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, o)
}

// ======================================================
// LIST
// ======================================================

func (h *OrderHandler) listScoped(scope ucOrder.Scope) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := h.list.Execute(c.Request.Context(), actor(c), scope)
		if err != nil {
			httperr.Handle(c, err)
			return
		}
		httpresp.OK(c, orders)
	}
}

func (h *OrderHandler) ListMine() gin.HandlerFunc {
	return h.listScoped(ucOrder.ScopeOwn)
}

func (h *OrderHandler) ListForMerchant() gin.HandlerFunc {
	return h.listScoped(ucOrder.ScopeMerchant)
}

func (h *OrderHandler) ListAll() gin.HandlerFunc {
	return h.listScoped(ucOrder.ScopeAll)
}

// ======================================================
// DETAIL
// ======================================================

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	o, err := h.get.Execute(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, o)
}

// ======================================================
// STATUS
// ======================================================

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.updateStatus.Execute(c.Request.Context(), actor(c), id, req.Status)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, o)
}
