package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusRejected  OrderStatus = "rejected"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Reference  string `json:"reference" gorm:"uniqueIndex"`
	UserID     uint   `json:"userId" gorm:"not null;index:idx_order_user_status" validate:"required"`
	User       User   `json:"user,omitempty" gorm:"foreignKey:UserID" validate:"-"`
	FoodID     uint   `json:"foodId" gorm:"not null" validate:"required"`
	Food       Food   `json:"food,omitempty" gorm:"foreignKey:FoodID" validate:"-"`
	HotelID    uint   `json:"hotelId" gorm:"not null;index:idx_order_hotel_status" validate:"required"`
	Hotel      Hotel  `json:"hotel,omitempty" gorm:"foreignKey:HotelID" validate:"-"`
	DeliveryID *uint  `json:"deliveryId"`
	Delivery   *User  `json:"delivery,omitempty" gorm:"foreignKey:DeliveryID" validate:"-"`
	Quantity   int    `json:"quantity" gorm:"not null" validate:"required,min=1"`
	// Price is the per-item price captured when the order was created.
	// It is never re-read from the Food row afterwards.
	Price       float64     `json:"price" gorm:"not null" validate:"min=0"`
	TotalAmount float64     `json:"totalAmount" gorm:"not null" validate:"min=0"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'pending';index:idx_order_user_status;index:idx_order_hotel_status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// BeforeSave keeps TotalAmount consistent with the price snapshot and
// quantity on every full persist, whatever code path mutated them.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.TotalAmount = o.Price * float64(o.Quantity)
	return nil
}
