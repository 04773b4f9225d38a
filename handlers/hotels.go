package handlers

import (
	"errors"
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllHotels returns every hotel
func GetAllHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.Find(&hotels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving hotels"})
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotel returns a single hotel by ID
func GetHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving hotel"})
		return
	}
	c.JSON(http.StatusOK, hotel)
}

type CreateHotelRequest struct {
	Name     string  `json:"name" binding:"required"`
	Rating   float64 `json:"rating" binding:"min=0,max=5"`
	Picture  string  `json:"picture" binding:"required"`
	Location string  `json:"location" binding:"required"`
}

// CreateHotel registers a new hotel
func CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hotel := models.Hotel{
		Name:     req.Name,
		Rating:   req.Rating,
		Picture:  req.Picture,
		Location: req.Location,
	}
	if verrs := models.Validate(&hotel); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid hotel", "errors": verrs})
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating hotel"})
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// GetHotelFoods lists every food offered by a hotel
func GetHotelFoods(c *gin.Context) {
	var foods []models.Food
	if err := config.DB.Where("hotel_id = ?", c.Param("id")).Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving foods"})
		return
	}
	if len(foods) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No foods found for this hotel"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetHotelOrders lists every order placed against a hotel, joined with
// customer, food and courier summaries.
func GetHotelOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Food").Preload("Hotel").Preload("User").Preload("Delivery").
		Where("hotel_id = ?", c.Param("id")).
		Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error retrieving orders", err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this hotel"})
		return
	}
	c.JSON(http.StatusOK, newOrderViews(orders))
}

// AssignHotel links a restaurant or delivery user to a hotel
func AssignHotel(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating hotel assignment", err)
		return
	}

	if user.Role != models.RoleRestaurant && user.Role != models.RoleDelivery {
		respondError(c, http.StatusBadRequest, "Only restaurant and delivery users can be assigned to hotels", nil)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, "id = ?", c.Param("hotelId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Hotel not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating hotel assignment", err)
		return
	}

	if err := config.DB.Model(&user).Update("hotel_id", hotel.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error updating hotel assignment", err)
		return
	}

	config.DB.Preload("Hotel").First(&user, user.ID)
	respondOK(c, http.StatusOK, "Hotel assignment updated successfully", user)
}
