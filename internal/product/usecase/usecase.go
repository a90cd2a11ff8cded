package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/product"
	"github.com/paododia/paododia-admin-service/internal/product/dto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Price < 0 {
		return nil, product.ErrNegativePrice
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Price:       input.Price,
		IsActive:    input.IsActive,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	uc.logger.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if input.Price < 0 {
		return nil, product.ErrNegativePrice
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &model.Product{
		BaseModel: model.BaseModel{
			ID:        existing.ID,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
		Name:        input.Name,
		Price:       input.Price,
		IsActive:    input.IsActive,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "update product")
	}

	return updated, nil
}
