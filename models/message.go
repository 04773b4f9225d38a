package models

import "time"

// Message is a contact-form submission. Append-only, no lifecycle.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null" validate:"required"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID" validate:"-"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Email     string    `json:"email" gorm:"not null" validate:"required,email"`
	Message   string    `json:"message" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
