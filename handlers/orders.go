package handlers

import (
	"errors"
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"
	"github.com/nahom-lulseged/gursha-backend/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	FoodID   uint `json:"foodId" binding:"required"`
	HotelID  uint `json:"hotelId" binding:"required"`
	UserID   uint `json:"userId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CreateOrder places a new order. Validation is fail-fast: inputs, then food,
// user and hotel existence, then the food/hotel ownership check. The food
// price is snapshotted onto the order and never re-read afterwards.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide valid foodId, userId, hotelId and quantity", err)
		return
	}

	var food models.Food
	if err := config.DB.First(&food, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Food item not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, req.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Hotel not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	if food.HotelID != req.HotelID {
		respondError(c, http.StatusBadRequest, "Food item does not belong to the specified hotel", nil)
		return
	}

	order := models.Order{
		Reference: uuid.NewString(),
		UserID:    req.UserID,
		FoodID:    req.FoodID,
		HotelID:   req.HotelID,
		Quantity:  req.Quantity,
		Price:     food.Price,
		Status:    models.StatusPending,
	}
	if verrs := models.Validate(&order); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order", "errors": verrs})
		return
	}

	if err := config.DB.Create(&order).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	if err := config.DB.Preload("Food").Preload("Hotel").Preload("User").
		First(&order, order.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating order", err)
		return
	}

	respondOK(c, http.StatusCreated, "Order created successfully", newOrderView(order))
}

type AcceptOrderRequest struct {
	DeliveryID uint `json:"deliveryId" binding:"required"`
}

// AcceptOrder assigns a delivery user and moves the order to accepted.
// The status guard lives in the UPDATE's WHERE clause, so two couriers
// racing for the same order cannot both win.
func AcceptOrder(c *gin.Context) {
	var req AcceptOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a deliveryId", err)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating order status", err)
		return
	}

	if order.Status == models.StatusAccepted {
		respondError(c, http.StatusBadRequest, "Order is already accepted", nil)
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusAccepted); err != nil {
		respondError(c, http.StatusBadRequest, "Cannot accept order in status '"+string(order.Status)+"'", err)
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      models.StatusAccepted,
			"delivery_id": req.DeliveryID,
		})
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, "Error updating order status", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusBadRequest, "Order is already accepted", nil)
		return
	}

	config.DB.First(&order, order.ID)
	respondOK(c, http.StatusOK, "Order status updated to accepted", order)
}

// RejectOrder turns an order down. Pending and accepted orders may be
// rejected; terminal orders may not.
func RejectOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating order status", err)
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusRejected); err != nil {
		respondError(c, http.StatusBadRequest, "Cannot reject order in status '"+string(order.Status)+"'", err)
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status IN ?", order.ID, []models.OrderStatus{models.StatusPending, models.StatusAccepted}).
		Update("status", models.StatusRejected)
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, "Error updating order status", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusBadRequest, "Cannot reject order in status '"+string(order.Status)+"'", nil)
		return
	}

	config.DB.First(&order, order.ID)
	respondOK(c, http.StatusOK, "Order status updated to rejected", order)
}

// CompleteOrder marks an accepted order as delivered.
func CompleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating order status", err)
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCompleted); err != nil {
		respondError(c, http.StatusBadRequest, "Cannot complete order in status '"+string(order.Status)+"'", err)
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.StatusAccepted).
		Update("status", models.StatusCompleted)
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, "Error updating order status", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusBadRequest, "Cannot complete order in status '"+string(order.Status)+"'", nil)
		return
	}

	config.DB.First(&order, order.ID)
	respondOK(c, http.StatusOK, "Order status updated to completed", order)
}

// GetStateMachineInfo returns the order lifecycle for documentation
func GetStateMachineInfo(c *gin.Context) {
	transitions := make([]gin.H, 0)
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   transitions,
		"initial_state":   models.StatusPending,
		"terminal_states": []models.OrderStatus{models.StatusRejected, models.StatusCompleted},
	})
}

// GetPendingOrders lists every pending order, newest first, joined with
// food, hotel and customer summaries.
func GetPendingOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Food").Preload("Hotel").Preload("User").
		Where("status = ?", models.StatusPending).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching pending orders", err)
		return
	}
	respondOK(c, http.StatusOK, "Pending orders retrieved successfully", newOrderViews(orders))
}

// GetUserOrders returns all of a user's orders, any status, newest first.
func GetUserOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Food").Preload("Hotel").Preload("User").Preload("Delivery").
		Where("user_id = ?", c.Param("userId")).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching orders", err)
		return
	}
	respondOK(c, http.StatusOK, "Orders retrieved successfully", newOrderViews(orders))
}

// GetAcceptedOrders returns the accepted orders assigned to a delivery user.
func GetAcceptedOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Food").Preload("Hotel").Preload("User").Preload("Delivery").
		Where("delivery_id = ? AND status = ?", c.Param("userId"), models.StatusAccepted).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching accepted orders", err)
		return
	}
	respondOK(c, http.StatusOK, "Accepted orders retrieved successfully", newOrderViews(orders))
}
