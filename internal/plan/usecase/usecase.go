package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/plan"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type planUseCase struct {
	repo   plan.Repository
	logger *zap.Logger
}

func NewPlanUseCase(repo plan.Repository, logger *zap.Logger) plan.UseCase {
	return &planUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *planUseCase) CreatePlan(ctx context.Context, input *dto.CreatePlanInput) (*model.Plan, error) {
	if input.Price < 0 {
		return nil, plan.ErrNegativePrice
	}

	now := time.Now()
	p := &model.Plan{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           input.Name,
		Price:          input.Price,
		IsCustomizable: input.IsCustomizable,
		IsActive:       input.IsActive,
		Description:    input.Description,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create plan")
	}

	uc.logger.Info("plan created", zap.String("plan_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *planUseCase) GetPlan(ctx context.Context, id string) (*model.Plan, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *planUseCase) ListPlans(ctx context.Context, filters *dto.PlanFilters) ([]model.Plan, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *planUseCase) UpdatePlan(ctx context.Context, input *dto.UpdatePlanInput) (*model.Plan, error) {
	if input.Price < 0 {
		return nil, plan.ErrNegativePrice
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &model.Plan{
		BaseModel: model.BaseModel{
			ID:        existing.ID,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
		Name:           input.Name,
		Price:          input.Price,
		IsCustomizable: input.IsCustomizable,
		IsActive:       input.IsActive,
		Description:    input.Description,
	}

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "update plan")
	}

	return updated, nil
}
