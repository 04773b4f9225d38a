package handlers

import (
	"net/http"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/middleware"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username    string          `json:"username" binding:"required"`
	Password    string          `json:"password" binding:"required,min=6"`
	PhoneNumber string          `json:"phoneNumber" binding:"required"`
	Role        models.UserRole `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide username, password and phone number", err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRoles[role] {
		respondError(c, http.StatusBadRequest, "Invalid role. Must be: customer, restaurant, delivery, or admin", nil)
		return
	}

	var existing models.User
	if result := config.DB.Where("username = ? OR phone_number = ?", req.Username, req.PhoneNumber).First(&existing); result.Error == nil {
		respondError(c, http.StatusBadRequest, "Username or phone number already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
	}
	if verrs := models.Validate(&user); verrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user", "errors": verrs})
		return
	}

	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	respondOK(c, http.StatusCreated, "Account created successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide username and password", err)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
