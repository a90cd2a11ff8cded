package model

// Plan is a recurring subscription tier. Same lifecycle as Product:
// soft-disabled via IsActive, never hard-deleted.
type Plan struct {
	BaseModel
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	IsCustomizable bool    `json:"isCustomizable"`
	IsActive       bool    `json:"isActive"`
	Description    string  `json:"description"`
}
