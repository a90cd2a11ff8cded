package plan

import (
	"context"
	"errors"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
)

var ErrNegativePrice = errors.New("plan price cannot be negative")

type UseCase interface {
	CreatePlan(ctx context.Context, input *dto.CreatePlanInput) (*model.Plan, error)
	GetPlan(ctx context.Context, id string) (*model.Plan, error)
	ListPlans(ctx context.Context, filters *dto.PlanFilters) ([]model.Plan, error)
	UpdatePlan(ctx context.Context, input *dto.UpdatePlanInput) (*model.Plan, error)
}
