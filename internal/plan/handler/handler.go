package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paododia/paododia-admin-service/internal/plan"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
	"go.uber.org/zap"
)

type PlanHandler struct {
	uc     plan.UseCase
	logger *zap.Logger
}

func NewPlanHandler(uc plan.UseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

type planRequest struct {
	Name           string   `json:"name" binding:"required"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	IsCustomizable bool     `json:"isCustomizable"`
	Description    string   `json:"description"`
	IsActive       *bool    `json:"isActive"`
}

func (r *planRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func (h *PlanHandler) List(c *gin.Context) {
	filters := &dto.PlanFilters{}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active filter"})
			return
		}
		filters.IsActive = &active
	}

	plans, err := h.uc.ListPlans(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreatePlan(c.Request.Context(), &dto.CreatePlanInput{
		Name:           req.Name,
		Price:          *req.Price,
		IsCustomizable: req.IsCustomizable,
		Description:    req.Description,
		IsActive:       req.active(),
	})
	if err != nil {
		h.logger.Error("failed to create plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PlanHandler) Update(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.UpdatePlan(c.Request.Context(), &dto.UpdatePlanInput{
		ID:             c.Param("id"),
		Name:           req.Name,
		Price:          *req.Price,
		IsCustomizable: req.IsCustomizable,
		Description:    req.Description,
		IsActive:       req.active(),
	})
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		h.logger.Error("failed to update plan", zap.Error(err), zap.String("plan_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, p)
}
