package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paododia/paododia-admin-service/internal/plan"
	"github.com/paododia/paododia-admin-service/internal/plan/dto"
	"github.com/paododia/paododia-admin-service/internal/plan/repository"
	"github.com/paododia/paododia-admin-service/internal/seed"
)

func setup(t *testing.T) plan.UseCase {
	t.Helper()
	repo := repository.NewMemoryRepository(seed.Plans(time.Now()))
	return NewPlanUseCase(repo, zap.NewNop())
}

func TestCreatePlan(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.CreatePlan(ctx, &dto.CreatePlanInput{
		Name:           "Plano Fim de Semana",
		Price:          29.90,
		IsCustomizable: false,
		IsActive:       true,
	})
	require.NoError(t, err)

	plans, err := uc.ListPlans(ctx, &dto.PlanFilters{})
	require.NoError(t, err)
	require.Len(t, plans, 4)
	assert.Equal(t, created.ID, plans[3].ID)
}

func TestUpdateUnknownPlanFailsWithoutEffect(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	before, err := uc.ListPlans(ctx, &dto.PlanFilters{})
	require.NoError(t, err)

	_, err = uc.UpdatePlan(ctx, &dto.UpdatePlanInput{ID: "unknown", Name: "X", Price: 1})
	assert.ErrorIs(t, err, plan.ErrNotFound)

	after, err := uc.ListPlans(ctx, &dto.PlanFilters{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdatePlanPreservesCreatedAt(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	original, err := uc.GetPlan(ctx, "plan1")
	require.NoError(t, err)

	updated, err := uc.UpdatePlan(ctx, &dto.UpdatePlanInput{
		ID:       "plan1",
		Name:     "Plano Básico",
		Price:    54.90,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 54.90, updated.Price)
}

func TestCreatePlanRejectsNegativePrice(t *testing.T) {
	uc := setup(t)

	_, err := uc.CreatePlan(context.Background(), &dto.CreatePlanInput{Name: "X", Price: -10})
	assert.ErrorIs(t, err, plan.ErrNegativePrice)
}
