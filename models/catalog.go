package models

import "time"

type Category struct {
	Key         string    `json:"key" bson:"key"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type FoodCategory struct {
	Key         string    `json:"key" bson:"key"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Book struct {
	Key         string    `json:"key" bson:"key"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Title       string    `json:"title" bson:"title" validate:"required"`
	Author      string    `json:"author" bson:"author" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Menu struct {
	Key         string    `json:"key" bson:"key"`
	CategoryID  string    `json:"categoryId" bson:"categoryId" validate:"required"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MenuWithCategory is a menu item with its food category embedded.
// Category is nil when the referenced food category no longer exists.
type MenuWithCategory struct {
	Menu
	Category *FoodCategory `json:"category"`
}
