package plan

import (
	"context"
	"errors"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
)

var ErrNotFound = errors.New("plan not found")

type Repository interface {
	Create(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id string) (*model.Plan, error)
	FindAll(ctx context.Context, filters *dto.PlanFilters) ([]model.Plan, error)
	Update(ctx context.Context, plan *model.Plan) error
}
