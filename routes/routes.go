package routes

import (
	"github.com/nahom-lulseged/gursha-backend/handlers"
	"github.com/nahom-lulseged/gursha-backend/middleware"
	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ── Foods ──────────────────────────────────────────────────────
	foods := api.Group("/foods")
	{
		foods.GET("/all", handlers.GetAllFoods)
		foods.GET("/find/:id", handlers.GetFood)
		foods.POST("/create", handlers.CreateFood)
		foods.PUT("/update/:id", handlers.UpdateFood)

		foods.GET("/ratings/:userId", handlers.GetUserFoodRatings)
		foods.GET("/:id/ratings", handlers.GetFoodRatings)
		foods.POST("/:id/rate", handlers.RateFood)
		foods.DELETE("/:id/rate/:userId", handlers.DeleteFoodRating)
	}

	// ── Hotels ─────────────────────────────────────────────────────
	hotels := api.Group("/hotels")
	{
		hotels.GET("/all", handlers.GetAllHotels)
		hotels.GET("/find/:id", handlers.GetHotel)
		hotels.POST("/create", handlers.CreateHotel)
		hotels.GET("/:id/foods", handlers.GetHotelFoods)
		hotels.GET("/:id/orders", handlers.GetHotelOrders)
		hotels.PUT("/assign/:userId/:hotelId", handlers.AssignHotel)

		hotels.GET("/ratings/:userId", handlers.GetUserHotelRatings)
		hotels.GET("/:id/ratings", handlers.GetHotelRatings)
		hotels.POST("/:id/rate", handlers.RateHotel)
		hotels.DELETE("/:id/rate/:userId", handlers.DeleteHotelRating)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := api.Group("/orders")
	{
		orders.GET("/pending-orders", handlers.GetPendingOrders)
		orders.GET("/user/:userId", handlers.GetUserOrders)
		orders.GET("/user/:userId/accepted-orders", handlers.GetAcceptedOrders)
		orders.POST("/create", handlers.CreateOrder)
		orders.PUT("/accept/:orderId", handlers.AcceptOrder)
		orders.PUT("/reject/:orderId", handlers.RejectOrder)
		orders.PUT("/complete/:orderId", handlers.CompleteOrder)
	}

	api.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Users & delivery ───────────────────────────────────────────
	api.GET("/user/all", handlers.GetAllUsers)
	api.GET("/delivery/delivery-users", handlers.GetDeliveryUsers)

	// ── Admin ──────────────────────────────────────────────────────
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/getUsers", handlers.AdminGetUsers)
		admin.GET("/getHotels", handlers.AdminGetHotels)
		admin.PUT("/updateUser/:userId", handlers.AdminUpdateUser)
		admin.DELETE("/removeUser/:userId", handlers.AdminRemoveUser)
		admin.PUT("/users/:userId/delivery-users", handlers.AdminUpdateDeliveryRoster)
	}

	// ── Messages ───────────────────────────────────────────────────
	messages := api.Group("/messages")
	{
		messages.GET("", handlers.GetMessages)
		messages.POST("/send", handlers.SendMessage)
	}
}
