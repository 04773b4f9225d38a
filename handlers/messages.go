package handlers

import (
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
)

// GetMessages returns every contact-form submission, newest first
func GetMessages(c *gin.Context) {
	var messages []models.Message
	if err := config.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type SendMessageRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SendMessage appends a contact-form submission
func SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	message := models.Message{
		UserID:  req.UserID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if verrs := models.Validate(&message); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message", "errors": verrs})
		return
	}

	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}
