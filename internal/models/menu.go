package models

// Menu item categories accepted by the API.
const (
	CategoryAppetizer = "appetizer"
	CategoryEntree    = "entree"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
)

// MenuItem represents a single orderable entry on the menu
type MenuItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
}

// MenuItemInput represents the candidate fields of a create or update
// request, before validation. Available is a pointer so an absent field
// can be told apart from an explicit false and defaulted to true.
type MenuItemInput struct {
	Name        string   `json:"name" validate:"min=3"`
	Description string   `json:"description" validate:"min=10"`
	Price       float64  `json:"price" validate:"gt=0"`
	Category    string   `json:"category" validate:"oneof=appetizer entree dessert beverage"`
	Ingredients []string `json:"ingredients" validate:"min=1,dive,min=1"`
	Available   *bool    `json:"available"`
}
