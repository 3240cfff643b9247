package catalog

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	CategoryID  string  `json:"categoryId,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryWithProducts is the admin/storefront category view: the category
// plus the products filed under it.
type CategoryWithProducts struct {
	Category
	ProductCount int       `json:"productCount"`
	Products     []Product `json:"products"`
}

type Hero struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}
