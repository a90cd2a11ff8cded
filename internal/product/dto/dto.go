package dto

type ProductFilters struct {
	IsActive *bool
}
