package models

import "time"

type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Rating    float64   `json:"rating" gorm:"default:0" validate:"min=0,max=5"`
	Picture   string    `json:"picture" gorm:"not null" validate:"required"`
	Location  string    `json:"location" gorm:"not null" validate:"required"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"polymorphic:Subject" validate:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
