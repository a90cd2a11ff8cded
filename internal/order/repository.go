package order

import (
	"context"
	"errors"
	"time"

	"github.com/paododia/paododia-admin-service/internal/model"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrVersionConflict = errors.New("order has been modified by another transaction")
)

type Repository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	// FindByDateRange returns orders whose OrderDate lies in [from, to).
	FindByDateRange(ctx context.Context, from, to time.Time) ([]model.Order, error)
	// Update replaces the stored record if the incoming version matches the
	// stored one, then bumps the version. Stale writers get ErrVersionConflict.
	Update(ctx context.Context, order *model.Order) error
}
