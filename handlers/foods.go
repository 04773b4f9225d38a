package handlers

import (
	"errors"
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllFoods returns every food item
func GetAllFoods(c *gin.Context) {
	var foods []models.Food
	if err := config.DB.Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetFood returns a single food item by ID
func GetFood(c *gin.Context) {
	var food models.Food
	if err := config.DB.First(&food, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

type CreateFoodRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       float64         `json:"price" binding:"min=0"`
	Description string          `json:"description"`
	Type        models.FoodType `json:"type" binding:"required"`
	HotelID     uint            `json:"hotelId" binding:"required"`
	Pictures    []string        `json:"pictures" binding:"required,min=1"`
}

// CreateFood adds a new menu item to a hotel
func CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	food := models.Food{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Type:        req.Type,
		HotelID:     req.HotelID,
		Pictures:    req.Pictures,
	}
	if verrs := models.Validate(&food); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food item", "errors": verrs})
		return
	}

	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating food item"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

type UpdateFoodRequest struct {
	Name        string          `json:"name"`
	Price       *float64        `json:"price"`
	Description *string         `json:"description"`
	Type        models.FoodType `json:"type"`
	Pictures    []string        `json:"pictures"`
}

// UpdateFood edits a food item; only supplied fields change
func UpdateFood(c *gin.Context) {
	var food models.Food
	if err := config.DB.First(&food, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating food"})
		return
	}

	var req UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.Name != "" {
		food.Name = req.Name
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Type != "" {
		food.Type = req.Type
	}
	if req.Pictures != nil {
		food.Pictures = req.Pictures
	}

	if verrs := models.Validate(&food); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food item", "errors": verrs})
		return
	}

	if err := config.DB.Save(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating food"})
		return
	}
	c.JSON(http.StatusOK, food)
}
