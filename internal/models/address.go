package models

import "gorm.io/gorm"

// Address is a shipping address belonging to a user.
type Address struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID string `json:"user_id" gorm:"index;type:varchar(36)"`

	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=20"`

	StreetLine string `json:"street_line" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	ZipCode    string `json:"zip_code" validate:"required,max=20"`
	Country    string `json:"country" gorm:"default:India" validate:"omitempty,max=100"`

	IsDefault bool `json:"is_default"`

	gorm.Model
}
