package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order"
	"github.com/paododia/paododia-admin-service/internal/order/dto"
	"github.com/paododia/paododia-admin-service/internal/report"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultHistoryPageSize = 10

type orderUseCase struct {
	repo     order.Repository
	loc      *time.Location
	pageSize int
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderUseCase(repo order.Repository, loc *time.Location, historyPageSize int, logger *zap.Logger) order.UseCase {
	if historyPageSize <= 0 {
		historyPageSize = defaultHistoryPageSize
	}
	return &orderUseCase{
		repo:     repo,
		loc:      loc,
		pageSize: historyPageSize,
		logger:   logger,
		now:      time.Now,
	}
}

// ListDailyOrders returns orders dated inside the current calendar day of
// the configured timezone, computed as an explicit [startOfDay, nextDay)
// window rather than a formatted-string comparison.
func (uc *orderUseCase) ListDailyOrders(ctx context.Context) ([]model.Order, error) {
	now := uc.now().In(uc.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 0, 1)
	return uc.repo.FindByDateRange(ctx, start, end)
}

func (uc *orderUseCase) DailyOrdersByCondominium(ctx context.Context) ([]report.OrderGroup, error) {
	orders, err := uc.ListDailyOrders(ctx)
	if err != nil {
		return nil, err
	}
	return report.GroupOrdersByCondominium(orders), nil
}

func (uc *orderUseCase) ListOrderHistory(ctx context.Context, page, limit int) (*dto.OrderHistoryPage, error) {
	orders, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = uc.pageSize
	}

	total := len(orders)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &dto.OrderHistoryPage{
		Orders:     orders[start:end],
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if !input.Type.Valid() {
		return nil, order.ErrInvalidType
	}
	if len(input.Items) == 0 {
		return nil, order.ErrEmptyOrder
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, order.ErrInvalidQuantity
		}
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	code := input.DeliveryCode
	if code == "" {
		generated, err := generateDeliveryCode()
		if err != nil {
			return nil, errors.Wrap(err, "generate delivery code")
		}
		code = generated
	}

	now := uc.now()
	o := &model.Order{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName: input.CustomerName,
		Condominium:  input.Condominium,
		Type:         input.Type,
		Items:        items,
		Status:       model.StatusPending,
		DeliveryCode: code,
		OrderDate:    now,
		Version:      1,
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	uc.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("condominium", o.Condominium),
		zap.String("type", string(o.Type)))
	return o, nil
}

// ConfirmDelivery is the one state transition the dashboard exposes:
// Pendente -> Entregue, gated by an exact, case-sensitive match on the
// delivery code. A rejected attempt leaves the order Pendente and may be
// retried indefinitely. Re-confirming an already delivered order with the
// right code is a legal no-op.
func (uc *orderUseCase) ConfirmDelivery(ctx context.Context, orderID, code string) (*order.ConfirmationResult, error) {
	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return &order.ConfirmationResult{Success: false, Message: order.MsgOrderNotFound}, err
		}
		return nil, err
	}

	if o.Status == model.StatusCancelled {
		return &order.ConfirmationResult{Success: false, Message: order.MsgOrderCancelled}, nil
	}

	if code != o.DeliveryCode {
		return &order.ConfirmationResult{Success: false, Message: order.MsgInvalidCode}, nil
	}

	if o.Status == model.StatusDelivered {
		return &order.ConfirmationResult{Success: true, Message: order.MsgDeliveryConfirmed}, nil
	}

	o.Status = model.StatusDelivered
	o.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, errors.Wrap(err, "confirm delivery")
	}

	uc.logger.Info("delivery confirmed", zap.String("order_id", o.ID))
	return &order.ConfirmationResult{Success: true, Message: order.MsgDeliveryConfirmed}, nil
}

func (uc *orderUseCase) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.Status != model.StatusPending {
		return nil, order.ErrNotCancellable
	}

	o.Status = model.StatusCancelled
	o.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}

	uc.logger.Info("order cancelled", zap.String("order_id", o.ID))
	o.Version++ // mirror the store's version bump
	return o, nil
}

func (uc *orderUseCase) ProductionReport(ctx context.Context) (*report.ProductionSummary, error) {
	orders, err := uc.ListDailyOrders(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildProductionSummary(orders), nil
}

func generateDeliveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
