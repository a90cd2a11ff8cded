package customer

import (
	"context"

	"github.com/paododia/paododia-admin-service/internal/customer/dto"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/report"
)

type UseCase interface {
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	ListByCondominium(ctx context.Context, filters *dto.CustomerFilters) ([]report.CustomerGroup, error)
}
