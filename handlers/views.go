package handlers

import (
	"time"

	"github.com/nahom-lulseged/gursha-backend/models"
)

// Read-side projections embedded in order responses. Only the fields a
// client needs to display an order, never credentials.

type foodSummary struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Pictures []string `json:"pictures"`
}

type hotelSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type userSummary struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
}

type orderView struct {
	ID          uint               `json:"id"`
	Reference   string             `json:"reference"`
	Quantity    int                `json:"quantity"`
	Price       float64            `json:"price"`
	TotalAmount float64            `json:"totalAmount"`
	Status      models.OrderStatus `json:"status"`
	Food        foodSummary        `json:"food"`
	Hotel       hotelSummary       `json:"hotel"`
	User        userSummary        `json:"user"`
	Delivery    *userSummary       `json:"delivery,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func newOrderView(o models.Order) orderView {
	view := orderView{
		ID:          o.ID,
		Reference:   o.Reference,
		Quantity:    o.Quantity,
		Price:       o.Price,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Food: foodSummary{
			ID:       o.Food.ID,
			Name:     o.Food.Name,
			Price:    o.Food.Price,
			Pictures: o.Food.Pictures,
		},
		Hotel: hotelSummary{
			ID:       o.Hotel.ID,
			Name:     o.Hotel.Name,
			Location: o.Hotel.Location,
		},
		User: userSummary{
			ID:          o.User.ID,
			Username:    o.User.Username,
			PhoneNumber: o.User.PhoneNumber,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Delivery != nil {
		view.Delivery = &userSummary{
			ID:          o.Delivery.ID,
			Username:    o.Delivery.Username,
			PhoneNumber: o.Delivery.PhoneNumber,
		}
	}
	return view
}

func newOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}
