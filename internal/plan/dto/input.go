package dto

type CreatePlanInput struct {
	Name           string
	Price          float64
	IsCustomizable bool
	Description    string
	IsActive       bool
}

type UpdatePlanInput struct {
	ID             string
	Name           string
	Price          float64
	IsCustomizable bool
	Description    string
	IsActive       bool
}
