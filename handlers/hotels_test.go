package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nahom-lulseged/gursha-backend/config"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
)

func setupHotelRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	config.Load()
	config.InitDB()

	r := gin.New()
	r.GET("/api/hotels/all", GetAllHotels)
	r.GET("/api/hotels/find/:id", GetHotel)
	r.POST("/api/hotels/create", CreateHotel)
	r.GET("/api/hotels/:id/foods", GetHotelFoods)
	r.PUT("/api/hotels/assign/:userId/:hotelId", AssignHotel)
	r.GET("/api/foods/all", GetAllFoods)
	r.POST("/api/foods/create", CreateFood)
	r.PUT("/api/foods/update/:id", UpdateFood)
	r.GET("/api/user/all", GetAllUsers)
	r.GET("/api/delivery/delivery-users", GetDeliveryUsers)
	return r
}

func TestHotelAndFoodCRUD(t *testing.T) {
	r := setupHotelRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/hotels/create", gin.H{
		"name":     "Addis Taste",
		"picture":  "addis.jpg",
		"location": "Bole",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create hotel = %d, body = %s", w.Code, w.Body.String())
	}
	var hotel models.Hotel
	if err := json.Unmarshal(w.Body.Bytes(), &hotel); err != nil {
		t.Fatalf("decode hotel: %v", err)
	}
	if hotel.Rating != 0 {
		t.Fatalf("default rating = %v, want 0", hotel.Rating)
	}

	// missing location is a validation error
	w = doJSON(t, r, http.MethodPost, "/api/hotels/create", gin.H{"name": "X", "picture": "x.jpg"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid hotel = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/foods/create", gin.H{
		"name":     "Kitfo",
		"price":    9.5,
		"type":     "dinner",
		"hotelId":  hotel.ID,
		"pictures": []string{"kitfo.jpg"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create food = %d, body = %s", w.Code, w.Body.String())
	}
	var food models.Food
	if err := json.Unmarshal(w.Body.Bytes(), &food); err != nil {
		t.Fatalf("decode food: %v", err)
	}

	// type outside the enum is rejected at the store boundary
	w = doJSON(t, r, http.MethodPost, "/api/foods/create", gin.H{
		"name": "Mystery", "price": 1, "type": "brunch", "hotelId": hotel.ID, "pictures": []string{"m.jpg"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid food type = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/foods/update/%d", food.ID), gin.H{"price": 11})
	if w.Code != http.StatusOK {
		t.Fatalf("update food = %d, body = %s", w.Code, w.Body.String())
	}
	var updated models.Food
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode food: %v", err)
	}
	if updated.Price != 11 || updated.Name != "Kitfo" {
		t.Fatalf("partial update broke fields: %+v", updated)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/hotels/%d/foods", hotel.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hotel foods = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/hotels/9999/foods", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty hotel foods = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/hotels/find/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown hotel = %d, want 404", w.Code)
	}
}

func TestAssignHotel(t *testing.T) {
	r := setupHotelRouter(t)

	owner := models.User{Username: "owner", PasswordHash: "hash", PhoneNumber: "0911000010", Role: models.RoleRestaurant}
	customer := models.User{Username: "guest", PasswordHash: "hash", PhoneNumber: "0911000011", Role: models.RoleCustomer}
	hotel := models.Hotel{Name: "Addis Taste", Picture: "addis.jpg", Location: "Bole"}
	for _, m := range []interface{}{&owner, &customer, &hotel} {
		if err := config.DB.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/hotels/assign/%d/%d", owner.ID, hotel.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("assign = %d, body = %s", w.Code, w.Body.String())
	}
	var stored models.User
	config.DB.First(&stored, owner.ID)
	if stored.HotelID == nil || *stored.HotelID != hotel.ID {
		t.Fatalf("hotelId = %v, want %d", stored.HotelID, hotel.ID)
	}

	// customers cannot hold a hotel assignment
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/hotels/assign/%d/%d", customer.ID, hotel.ID), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("assign customer = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/hotels/assign/%d/9999", owner.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("assign unknown hotel = %d, want 404", w.Code)
	}
}

func TestDeliveryUserListing(t *testing.T) {
	r := setupHotelRouter(t)

	courier := models.User{Username: "sara", PasswordHash: "hash", PhoneNumber: "0911000020", Role: models.RoleDelivery}
	customer := models.User{Username: "abel", PasswordHash: "hash", PhoneNumber: "0911000021", Role: models.RoleCustomer}
	for _, m := range []interface{}{&courier, &customer} {
		if err := config.DB.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/delivery/delivery-users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0]["username"] != "sara" {
		t.Fatalf("delivery listing = %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/user/all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("users = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "hash") {
		t.Fatal("user listing leaks credentials")
	}
}
