package models

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Hotel{}, &Food{}, &Review{}, &Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestOrderTotalAmountOnCreate(t *testing.T) {
	db := openTestDB(t)

	order := Order{UserID: 1, FoodID: 1, HotelID: 1, Quantity: 3, Price: 9.50}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.TotalAmount != 28.50 {
		t.Fatalf("totalAmount = %v, want 28.50", order.TotalAmount)
	}

	var stored Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if stored.TotalAmount != 28.50 {
		t.Fatalf("stored totalAmount = %v, want 28.50", stored.TotalAmount)
	}
	if stored.Status != StatusPending {
		t.Fatalf("status = %s, want pending", stored.Status)
	}
}

func TestOrderTotalAmountRecomputedOnSave(t *testing.T) {
	db := openTestDB(t)

	order := Order{UserID: 1, FoodID: 1, HotelID: 1, Quantity: 2, Price: 4}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	// any future code path mutating quantity or price must not be able to
	// persist a stale total
	order.Quantity = 5
	order.TotalAmount = 1
	if err := db.Save(&order).Error; err != nil {
		t.Fatalf("save order: %v", err)
	}

	var stored Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if stored.TotalAmount != 20 {
		t.Fatalf("totalAmount = %v, want 20", stored.TotalAmount)
	}
}

func TestValidateFood(t *testing.T) {
	food := Food{Name: "Kitfo", Price: 12, Type: TypeDinner, HotelID: 1, Pictures: []string{"a.jpg"}}
	if verrs := Validate(&food); verrs != nil {
		t.Fatalf("valid food rejected: %+v", verrs)
	}

	bad := Food{Name: "", Price: -1, Type: "brunch", Pictures: nil}
	verrs := Validate(&bad)
	if verrs == nil {
		t.Fatal("invalid food accepted")
	}
	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"Name", "Price", "Type", "HotelID", "Pictures"} {
		if !fields[want] {
			t.Errorf("expected violation on %s, got %+v", want, verrs)
		}
	}
}

func TestValidateUserRole(t *testing.T) {
	user := User{Username: "abel", PasswordHash: "x", PhoneNumber: "0911", Role: "driver"}
	if verrs := Validate(&user); verrs == nil {
		t.Fatal("unknown role accepted")
	}
	user.Role = RoleDelivery
	if verrs := Validate(&user); verrs != nil {
		t.Fatalf("valid user rejected: %+v", verrs)
	}
}
