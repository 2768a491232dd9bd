package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

type OrdersHandler struct {
	store  *store.OrderStore
	logger *zap.SugaredLogger
}

func NewOrdersHandler(store *store.OrderStore, logger *zap.SugaredLogger) *OrdersHandler {
	return &OrdersHandler{
		store:  store,
		logger: logger,
	}
}

// Create godoc
// @Summary     Submit an order
// @Description Normalizes and stores a customer order. Quantity, prices and the
// @Description order date are coerced; the status starts as pending unless a
// @Description valid one was supplied.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order payload"
// @Success     201 {object} models.CreateOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	order, err := h.store.Create(req)
	if errors.Is(err, store.ErrMissingCustomerFields) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing required customer fields",
			Message: "customer name, phone, address and city are required",
		})
		return
	}
	if err != nil {
		h.logger.Errorw("failed to save order", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save order"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateOrderResponse{OK: true, Order: *order})
}

// List godoc
// @Summary     List orders
// @Description Returns all orders. A missing or unreadable orders file yields an
// @Description empty list rather than an error.
// @Tags        orders
// @Produce     json
// @Success     200 {array} models.Order
// @Failure     401 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

// UpdateStatus godoc
// @Summary     Update order status
// @Description Replaces only the status of the matching order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       order_id path string true "Order id"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/status [put]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	order, err := h.store.UpdateStatus(orderID, req.Status)
	if errors.Is(err, store.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid status",
			Message: "status must be one of: " + strings.Join(models.OrderStatuses, ", "),
		})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		h.logger.Errorw("failed to update order status", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
