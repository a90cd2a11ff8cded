package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paododia/paododia-admin-service/internal/product"
	"github.com/paododia/paododia-admin-service/internal/product/dto"
	"github.com/paododia/paododia-admin-service/internal/product/repository"
	"github.com/paododia/paododia-admin-service/internal/seed"
)

func setup(t *testing.T) product.UseCase {
	t.Helper()
	repo := repository.NewMemoryRepository(seed.Products(time.Now()))
	return NewProductUseCase(repo, zap.NewNop())
}

func TestCreateProduct(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:     "Rosca",
		Price:    3.5,
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	products, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, products, 5)

	// The new entry's id must be distinct from all prior ids.
	for _, p := range products[:4] {
		assert.NotEqual(t, p.ID, created.ID)
	}
	assert.Equal(t, "Rosca", products[4].Name)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	uc := setup(t)

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:  "Broa",
		Price: -1,
	})
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestUpdateProduct(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	updated, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:       "p1",
		Name:     "Pão Francês Integral",
		Price:    0.95,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pão Francês Integral", updated.Name)
	assert.Equal(t, 0.95, updated.Price)

	got, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pão Francês Integral", got.Name)
}

func TestUpdateUnknownProductFailsWithoutEffect(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	before, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:    "unknown",
		Name:  "Fantasma",
		Price: 1,
	})
	assert.ErrorIs(t, err, product.ErrNotFound)

	// No record created, no existing record mutated.
	after, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListProductsActiveFilter(t *testing.T) {
	uc := setup(t)

	active := true
	products, err := uc.ListProducts(context.Background(), &dto.ProductFilters{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsActive)
	}
}
