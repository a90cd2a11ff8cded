package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paododia/paododia-admin-service/internal/customer"
	"github.com/paododia/paododia-admin-service/internal/customer/dto"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger *zap.Logger
}

func NewCustomerHandler(uc customer.UseCase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

func parseFilters(c *gin.Context) (*dto.CustomerFilters, bool) {
	filters := &dto.CustomerFilters{}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active filter"})
			return nil, false
		}
		filters.IsActive = &active
	}
	return filters, true
}

func (h *CustomerHandler) List(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	customers, err := h.uc.ListCustomers(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) ListByCondominium(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	groups, err := h.uc.ListByCondominium(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to group customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, groups)
}
