package order

import (
	"context"
	"errors"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order/dto"
	"github.com/paododia/paododia-admin-service/internal/report"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrInvalidType     = errors.New("unknown order type")
	ErrNotCancellable  = errors.New("only pending orders can be cancelled")
)

// User-facing confirmation messages, kept verbatim from the dashboard.
const (
	MsgOrderNotFound     = "Pedido não encontrado."
	MsgInvalidCode       = "Código de entrega inválido."
	MsgDeliveryConfirmed = "Entrega confirmada com sucesso!"
	MsgOrderCancelled    = "Pedido cancelado não pode ser confirmado."
)

// ConfirmationResult is the business outcome of a delivery confirmation
// attempt. A rejected code is a result, not a transport error.
type ConfirmationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UseCase interface {
	ListDailyOrders(ctx context.Context) ([]model.Order, error)
	DailyOrdersByCondominium(ctx context.Context) ([]report.OrderGroup, error)
	ListOrderHistory(ctx context.Context, page, limit int) (*dto.OrderHistoryPage, error)
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	ConfirmDelivery(ctx context.Context, orderID, code string) (*ConfirmationResult, error)
	CancelOrder(ctx context.Context, orderID string) (*model.Order, error)
	ProductionReport(ctx context.Context) (*report.ProductionSummary, error)
}
