package dto

type CustomerFilters struct {
	IsActive *bool
}
