package model

// Product is a bakery item offered for daily delivery. Products are never
// hard-deleted; IsActive soft-disables them instead.
type Product struct {
	BaseModel
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"isActive"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}
