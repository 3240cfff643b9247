package order

import (
	"errors"
	"net/http"
	"strconv"

	"wooders/internal/domain"
	"wooders/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/orders", h.Create)
	r.GET("/orders/track/:orderNumber", h.Track)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/orders", h.List)
	protected.PATCH("/orders/:id/status", h.UpdateStatus)
	protected.DELETE("/orders/:id", h.Delete)
}

// Create registers a new customer order.
// @Summary		Create order
// @Description	Public endpoint: persists a purchase request in pending status and notifies the shop administrator by email. The total amount is taken as submitted.
// @Tags		Orders
// @Param		request	body	CreateOrderRequest	true	"Customer info, line items, total, shipping address"
// @Success		201	{object}		map[string]interface{} "Order created, response includes the generated order number"
// @Failure		400	{object}		map[string]interface{} "Validation failed"
// @Failure		500	{object}		map[string]interface{} "Server error while creating the order"
// @Router		/orders [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order payload")
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to create order", err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Order created successfully", o)
}

// Track looks up an order by its public order number.
// @Summary		Track order
// @Tags		Orders
// @Param		orderNumber	path	string	true	"Order number (ORD-...)"
// @Success		200	{object}		map[string]interface{} "Order details"
// @Failure		404	{object}		map[string]interface{} "No order with this number"
// @Router		/orders/track/:orderNumber [GET]
func (h *Handler) Track(c *gin.Context) {
	o, err := h.svc.TrackByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Order number is required")
		default:
			response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch order", err)
		}
		return
	}

	response.Success(c, http.StatusOK, o)
}

// List returns all orders, newest first. Admin only.
func (h *Handler) List(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	response.Success(c, http.StatusOK, orders)
}

// UpdateStatus overwrites the order status and emails the customer. Admin only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Status must be one of: pending, processing, shipped, delivered, cancelled")
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid order status")
		default:
			response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to update order status", err)
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Order status updated successfully", o)
}

// Delete removes an order permanently. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to delete order", err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Order deleted successfully", nil)
}
