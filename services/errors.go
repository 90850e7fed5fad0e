package services

import "errors"

// Common service-level errors
var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrFoodCategoryNotFound = errors.New("food category not found")
	ErrBookNotFound         = errors.New("book not found")
	ErrMenuNotFound         = errors.New("menu not found")
)
