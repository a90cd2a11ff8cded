package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order"
	"github.com/paododia/paododia-admin-service/internal/order/dto"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *OrderHandler) ListDaily(c *gin.Context) {
	orders, err := h.uc.ListDailyOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list daily orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list daily orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListDailyByCondominium(c *gin.Context) {
	groups, err := h.uc.DailyOrdersByCondominium(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to group daily orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list daily orders"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *OrderHandler) History(c *gin.Context) {
	page := 1
	limit := 0
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.Query("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}

	history, err := h.uc.ListOrderHistory(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("failed to list order history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list order history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

type orderItemRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	ProductName string `json:"productName" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gte=1"`
}

type createOrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Condominium  string             `json:"condominium" binding:"required"`
	Type         string             `json:"type" binding:"required"`
	Items        []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryCode string             `json:"deliveryCode"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, dto.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	o, err := h.uc.CreateOrder(c.Request.Context(), &dto.CreateOrderInput{
		CustomerName: req.CustomerName,
		Condominium:  req.Condominium,
		Type:         model.OrderType(req.Type),
		Items:        items,
		DeliveryCode: req.DeliveryCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidType),
			errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

type confirmDeliveryRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *OrderHandler) ConfirmDelivery(c *gin.Context) {
	var req confirmDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uc.ConfirmDelivery(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, result)
		case errors.Is(err, order.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to confirm delivery", zap.Error(err), zap.String("order_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm delivery"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	o, err := h.uc.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, order.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, order.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to cancel order", zap.Error(err), zap.String("order_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) ProductionReport(c *gin.Context) {
	summary, err := h.uc.ProductionReport(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build production report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build production report"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
