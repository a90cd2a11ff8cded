package dto

type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	IsActive    bool
}

type UpdateProductInput struct {
	ID          string
	Name        string
	Price       float64
	Description string
	ImageURL    string
	IsActive    bool
}
