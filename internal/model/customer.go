package model

// Customer is a subscriber living in one of the serviced condominiums.
// PlanName is a snapshot of the plan's name at assignment time; there is
// no enforced referential integrity against the live Plan record.
type Customer struct {
	BaseModel
	Name           string `json:"name"`
	Condominium    string `json:"condominium"`
	PlanID         string `json:"planId"`
	PlanName       string `json:"planName"`
	DeliveryConfig string `json:"deliveryConfig"`
	IsActive       bool   `json:"isActive"`
}
