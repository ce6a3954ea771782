package domain

// Product is a sellable item rendered into every chat prompt.
// Price is a display string ("£89.99"), never used for arithmetic.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	InStock     bool   `json:"inStock"`
}

// CreateProductRequest is the request to add a product to the catalog.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}
