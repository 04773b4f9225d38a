package models

import "time"

// FoodType classifies a menu item
type FoodType string

const (
	TypeBreakfast FoodType = "breakfast"
	TypeLunch     FoodType = "lunch"
	TypeDinner    FoodType = "dinner"
	TypeHotDrink  FoodType = "hotdrink"
	TypeAlcohol   FoodType = "alcohol"
	TypeBeverage  FoodType = "beverage"
)

type Food struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Price       float64   `json:"price" gorm:"not null" validate:"min=0"`
	Description string    `json:"description"`
	Type        FoodType  `json:"type" gorm:"not null" validate:"required,oneof=breakfast lunch dinner hotdrink alcohol beverage"`
	Rating      float64   `json:"rating" gorm:"default:0" validate:"min=0,max=5"`
	HotelID     uint      `json:"hotelId" gorm:"not null;index" validate:"required"`
	Hotel       Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID" validate:"-"`
	Pictures    []string  `json:"pictures" gorm:"serializer:json" validate:"required,min=1,dive,required"`
	Reviews     []Review  `json:"reviews,omitempty" gorm:"polymorphic:Subject" validate:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
