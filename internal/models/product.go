package models

import "gorm.io/gorm"

// Category groups products for browsing and filtering.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Product represents a product in the store.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"index;type:varchar(255)" validate:"required,min=3,max=255"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Stock       int     `json:"stock_quantity" validate:"gte=0"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	CategoryID  *string `json:"category_id" gorm:"type:varchar(36)"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	gorm.Model
}
