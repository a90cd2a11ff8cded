package customer

import (
	"context"
	"errors"

	"github.com/paododia/paododia-admin-service/internal/customer/dto"
	"github.com/paododia/paododia-admin-service/internal/model"
)

var ErrNotFound = errors.New("customer not found")

// Customers are a read-only surface in the admin dashboard; the repository
// still takes a seed so the store owns its records like the other entities.
type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
}
