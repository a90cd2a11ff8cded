package dto

import "github.com/paododia/paododia-admin-service/internal/model"

type OrderItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// CreateOrderInput carries a new daily order. DeliveryCode is optional;
// a fresh 4-digit code is generated when it is empty.
type CreateOrderInput struct {
	CustomerName string
	Condominium  string
	Type         model.OrderType
	Items        []OrderItemInput
	DeliveryCode string
}
