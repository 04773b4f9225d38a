package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"
	"github.com/nahom-lulseged/gursha-backend/ratings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RateRequest struct {
	UserID  uint     `json:"userId" binding:"required"`
	Rating  *float64 `json:"rating" binding:"required"`
	Comment *string  `json:"comment"`
}

func (r RateRequest) valid() bool {
	return r.Rating != nil && *r.Rating >= 0 && *r.Rating <= 5
}

// upsertReview persists the outcome of a pure review upsert: an UPDATE for
// an existing reviewer, an INSERT otherwise. Must run inside the same
// transaction as the denormalized rating write.
func upsertReview(tx *gorm.DB, subjectType string, subjectID uint, reviews []models.Review, req RateRequest) ([]models.Review, error) {
	updated, existed := ratings.Upsert(reviews, req.UserID, *req.Rating, req.Comment)
	rev := ratings.Find(updated, req.UserID)
	if existed {
		err := tx.Model(&models.Review{}).Where("id = ?", rev.ID).
			Updates(map[string]interface{}{"rating": rev.Rating, "comment": rev.Comment}).Error
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	rev.SubjectID = subjectID
	rev.SubjectType = subjectType
	if err := tx.Create(rev).Error; err != nil {
		return nil, err
	}
	return updated, nil
}

// removeReview deletes the reviewer's entry (if any) inside the caller's
// transaction and returns the remaining set.
func removeReview(tx *gorm.DB, subjectType string, subjectID uint, reviews []models.Review, userID uint) ([]models.Review, error) {
	remaining := ratings.Remove(reviews, userID)
	err := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Delete(&models.Review{}).Error
	if err != nil {
		return nil, err
	}
	return remaining, nil
}

func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// ── Food ratings ─────────────────────────────────────────────────────────────

// RateFood upserts the caller's review of a food item and recomputes the
// denormalized average before the transaction commits.
func RateFood(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rating value"})
		return
	}

	var foodID uint
	var newRating float64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.Preload("Reviews").First(&food, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		reviews, err := upsertReview(tx, models.SubjectFood, food.ID, food.Reviews, req)
		if err != nil {
			return err
		}
		foodID = food.ID
		newRating = ratings.Average(reviews)
		return tx.Model(&models.Food{}).Where("id = ?", food.ID).Update("rating", newRating).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      foodID,
		"rating":  newRating,
		"message": "Rating updated successfully",
	})
}

// DeleteFoodRating removes a reviewer's rating of a food item. Deleting an
// absent review only recomputes the aggregate.
func DeleteFoodRating(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var newRating float64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.Preload("Reviews").First(&food, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		remaining, err := removeReview(tx, models.SubjectFood, food.ID, food.Reviews, userID)
		if err != nil {
			return err
		}
		newRating = ratings.Average(remaining)
		return tx.Model(&models.Food{}).Where("id = ?", food.ID).Update("rating", newRating).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Rating removed successfully",
		"newRating": newRating,
	})
}

// GetFoodRatings returns a food item's review list with reviewer names,
// plus the stored aggregate.
func GetFoodRatings(c *gin.Context) {
	var food models.Food
	if err := config.DB.Preload("Reviews.User").First(&food, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching food ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"averageRating": food.Rating,
		"totalReviews":  len(food.Reviews),
		"reviews":       food.Reviews,
	})
}

// GetUserFoodRatings lists every food rating a user has submitted.
func GetUserFoodRatings(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := config.DB.
		Where("subject_type = ? AND user_id = ?", models.SubjectFood, userID).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching food ratings"})
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, gin.H{"foodId": r.SubjectID, "rating": r.Rating, "comment": r.Comment})
	}
	c.JSON(http.StatusOK, out)
}

// ── Hotel ratings ────────────────────────────────────────────────────────────

// RateHotel upserts the caller's review of a hotel, same rules as RateFood.
func RateHotel(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rating value"})
		return
	}

	var hotelID uint
	var newRating float64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.Preload("Reviews").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		reviews, err := upsertReview(tx, models.SubjectHotel, hotel.ID, hotel.Reviews, req)
		if err != nil {
			return err
		}
		hotelID = hotel.ID
		newRating = ratings.Average(reviews)
		return tx.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Update("rating", newRating).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      hotelID,
		"rating":  newRating,
		"message": "Rating updated successfully",
	})
}

// DeleteHotelRating removes a reviewer's rating of a hotel.
func DeleteHotelRating(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var newRating float64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.Preload("Reviews").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		remaining, err := removeReview(tx, models.SubjectHotel, hotel.ID, hotel.Reviews, userID)
		if err != nil {
			return err
		}
		newRating = ratings.Average(remaining)
		return tx.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Update("rating", newRating).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Rating removed successfully",
		"newRating": newRating,
	})
}

// GetHotelRatings returns a hotel's review list with reviewer names.
func GetHotelRatings(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.Preload("Reviews.User").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"averageRating": hotel.Rating,
		"totalReviews":  len(hotel.Reviews),
		"reviews":       hotel.Reviews,
	})
}

// GetUserHotelRatings lists every hotel rating a user has submitted.
func GetUserHotelRatings(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := config.DB.
		Where("subject_type = ? AND user_id = ?", models.SubjectHotel, userID).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ratings"})
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, gin.H{"hotelId": r.SubjectID, "rating": r.Rating})
	}
	c.JSON(http.StatusOK, out)
}
