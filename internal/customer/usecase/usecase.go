package usecase

import (
	"context"

	"github.com/paododia/paododia-admin-service/internal/customer"
	"github.com/paododia/paododia-admin-service/internal/customer/dto"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/report"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, logger *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) ListByCondominium(ctx context.Context, filters *dto.CustomerFilters) ([]report.CustomerGroup, error) {
	customers, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}
	return report.GroupCustomersByCondominium(customers), nil
}
