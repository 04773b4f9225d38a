package handlers

import (
	"errors"
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllUsers returns every user, hotel assignment included
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Hotel").Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error retrieving users", err)
		return
	}
	respondOK(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetDeliveryUsers returns every user with the delivery role
func GetDeliveryUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Hotel").
		Where("role = ?", models.RoleDelivery).
		Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Error retrieving delivery users", err)
		return
	}
	respondOK(c, http.StatusOK, "Delivery users retrieved successfully", users)
}

// ── Admin ────────────────────────────────────────────────────────────────────

// AdminGetUsers returns all users for the admin dashboard
func AdminGetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Hotel").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminGetHotels returns all hotels with their reviews and reviewer names
func AdminGetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.Preload("Reviews.User").Find(&hotels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hotels"})
		return
	}
	c.JSON(http.StatusOK, hotels)
}

type AdminUpdateUserRequest struct {
	Username    string          `json:"username"`
	PhoneNumber string          `json:"phoneNumber"`
	Role        models.UserRole `json:"role"`
	HotelID     *uint           `json:"hotelId"`
}

// AdminUpdateUser edits a user's profile fields
func AdminUpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.Role != "" && !models.ValidRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.HotelID != nil {
		user.HotelID = req.HotelID
	}

	if verrs := models.Validate(&user); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user", "errors": verrs})
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// AdminRemoveUser deletes a user
func AdminRemoveUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user"})
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

type UpdateRosterRequest struct {
	DeliveryUserIDs []uint `json:"deliveryUserIds" binding:"required"`
}

// AdminUpdateDeliveryRoster replaces a user's delivery roster. Every
// referenced user must exist and hold the delivery role.
func AdminUpdateDeliveryRoster(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating delivery roster", err)
		return
	}

	var req UpdateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide deliveryUserIds", err)
		return
	}

	var members []models.User
	if len(req.DeliveryUserIDs) > 0 {
		if err := config.DB.Where("id IN ?", req.DeliveryUserIDs).Find(&members).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating delivery roster", err)
			return
		}
	}
	if len(members) != len(req.DeliveryUserIDs) {
		respondError(c, http.StatusNotFound, "One or more delivery users not found", nil)
		return
	}
	for _, m := range members {
		if m.Role != models.RoleDelivery {
			respondError(c, http.StatusBadRequest, "Referenced user must have a delivery role", nil)
			return
		}
	}

	if err := config.DB.Model(&user).Association("DeliveryUsers").Replace(members); err != nil {
		respondError(c, http.StatusInternalServerError, "Error updating delivery roster", err)
		return
	}

	config.DB.Preload("DeliveryUsers").First(&user, user.ID)
	respondOK(c, http.StatusOK, "Delivery roster updated successfully", user)
}
