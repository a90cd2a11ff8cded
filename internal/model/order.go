package model

import "time"

// OrderStatus values keep the Portuguese wire representation the dashboard
// frontend already speaks.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pendente"
	StatusDelivered OrderStatus = "Entregue"
	StatusCancelled OrderStatus = "Cancelado"
)

type OrderType string

const (
	TypeSubscription OrderType = "Assinatura"
	TypeOneOff       OrderType = "Avulso"
)

func (t OrderType) Valid() bool {
	return t == TypeSubscription || t == TypeOneOff
}

// OrderItem carries a display snapshot of the product name; it is never
// re-resolved against the live Product record.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Order is a single day's delivery for one customer. CustomerName and
// Condominium are denormalized, not foreign keys. Version is the optimistic
// concurrency stamp checked on every update.
type Order struct {
	BaseModel
	CustomerName string      `json:"customerName"`
	Condominium  string      `json:"condominium"`
	Type         OrderType   `json:"type"`
	Items        []OrderItem `json:"items"`
	Status       OrderStatus `json:"status"`
	DeliveryCode string      `json:"deliveryCode"`
	OrderDate    time.Time   `json:"orderDate"`
	Version      int         `json:"version"`
}

// Clone returns a deep copy so callers can never mutate a stored order
// through a previously returned record.
func (o *Order) Clone() *Order {
	clone := *o
	if o.Items != nil {
		clone.Items = make([]OrderItem, len(o.Items))
		copy(clone.Items, o.Items)
	}
	return &clone
}
