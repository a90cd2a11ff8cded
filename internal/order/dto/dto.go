package dto

import "github.com/paododia/paododia-admin-service/internal/model"

// OrderHistoryPage is one page of the full order history, newest first.
type OrderHistoryPage struct {
	Orders     []model.Order `json:"orders"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
}
