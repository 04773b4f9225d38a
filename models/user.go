package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleDelivery   UserRole = "delivery"
	RoleAdmin      UserRole = "admin"
)

// ValidRoles is the closed set of roles accepted at registration and admin updates
var ValidRoles = map[UserRole]bool{
	RoleCustomer:   true,
	RoleRestaurant: true,
	RoleDelivery:   true,
	RoleAdmin:      true,
}

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	PasswordHash  string    `json:"-" gorm:"not null" validate:"required"`
	Wallet        float64   `json:"wallet" gorm:"default:0" validate:"min=0"`
	Coin          float64   `json:"coin" gorm:"default:0" validate:"min=0"`
	PhoneNumber   string    `json:"phoneNumber" gorm:"uniqueIndex;not null" validate:"required"`
	Role          UserRole  `json:"role" gorm:"not null;default:'customer'" validate:"required,oneof=customer restaurant delivery admin"`
	HotelID       *uint     `json:"hotelId"`
	Hotel         *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID" validate:"-"`
	DeliveryUsers []User    `json:"deliveryUsers,omitempty" gorm:"many2many:user_delivery_users;joinForeignKey:UserID;joinReferences:DeliveryUserID" validate:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
