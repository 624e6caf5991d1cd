package models

// Product is one entry from the public catalog API, consumed read-only.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Category    ProductCategory `json:"category"`
	Images      []string        `json:"images"`
}

type ProductCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
