package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order"
	"github.com/paododia/paododia-admin-service/internal/seed"
)

func TestFindByIDReturnsIsolatedCopy(t *testing.T) {
	repo := NewMemoryRepository(seed.Orders(time.Now()))
	ctx := context.Background()

	o, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)

	// Mutating the returned record must not touch the store.
	o.Status = model.StatusCancelled
	o.Items[0].Quantity = 999

	stored, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, 4, stored.Items[0].Quantity)
}

func TestFindAllPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository(seed.Orders(time.Now()))

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 5)
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"o1", "o2", "o3", "o4", "o5"}, ids)
}

func TestFindByDateRange(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(seed.Orders(now))

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	orders, err := repo.FindByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestUpdateBumpsVersion(t *testing.T) {
	repo := NewMemoryRepository(seed.Orders(time.Now()))
	ctx := context.Background()

	o, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, 1, o.Version)

	o.Status = model.StatusDelivered
	require.NoError(t, repo.Update(ctx, o))

	stored, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, stored.Status)
	assert.Equal(t, 2, stored.Version)
}

func TestUpdateRejectsStaleVersion(t *testing.T) {
	repo := NewMemoryRepository(seed.Orders(time.Now()))
	ctx := context.Background()

	first, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)

	first.Status = model.StatusDelivered
	require.NoError(t, repo.Update(ctx, first))

	// The second admin still holds version 1 and must lose.
	second.Status = model.StatusCancelled
	err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, order.ErrVersionConflict)

	stored, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, stored.Status)
}

func TestUpdateUnknownOrder(t *testing.T) {
	repo := NewMemoryRepository(nil)

	err := repo.Update(context.Background(), &model.Order{BaseModel: model.BaseModel{ID: "ghost"}, Version: 1})
	assert.ErrorIs(t, err, order.ErrNotFound)
}
