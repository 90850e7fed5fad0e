package models

// Create requests carry pointers for numeric fields so a missing price
// can be told apart from a zero price.

type CreateCategoryRequest struct {
	Key         string `json:"key" validate:"omitempty,entitykey"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateCategoryRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

type CreateFoodCategoryRequest struct {
	Key         string `json:"key" validate:"omitempty,entitykey"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateFoodCategoryRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

type CreateBookRequest struct {
	Key         string   `json:"key" validate:"omitempty,entitykey"`
	Category    string   `json:"category" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

type UpdateBookRequest struct {
	Category    *string  `json:"category"`
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type CreateMenuRequest struct {
	Key         string   `json:"key" validate:"omitempty,entitykey"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

type UpdateMenuRequest struct {
	CategoryID  *string  `json:"categoryId"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}
