package dto

type PlanFilters struct {
	IsActive *bool
}
