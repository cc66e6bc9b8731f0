package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/search", handlers.SearchRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
	}

	// ── Authenticated user routes ──────────────────────────────────
	users := r.Group("/api/users")
	users.Use(middleware.AuthRequired())
	{
		users.GET("/profile", handlers.GetProfile)
		users.PUT("/profile", handlers.UpdateProfile)
		users.PUT("/password", handlers.UpdatePassword)
		users.GET("/addresses", handlers.GetAddresses)
		users.POST("/addresses", handlers.AddAddress)
		users.PUT("/addresses/:id", handlers.UpdateAddress)
		users.DELETE("/addresses/:id", handlers.DeleteAddress)
	}

	// ── Cart routes ────────────────────────────────────────────────
	cart := r.Group("/api/cart")
	cart.Use(middleware.AuthRequired())
	{
		cart.GET("", handlers.GetCart)
		cart.POST("/add", handlers.AddToCart)
		cart.PUT("/update/:itemId", handlers.UpdateCartItem)
		cart.DELETE("/remove/:itemId", handlers.RemoveFromCart)
		cart.DELETE("/clear", handlers.ClearCart)
	}

	// ── Order routes ───────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.POST("", handlers.PlaceOrder)
		orders.GET("/my", handlers.GetMyOrders)
		orders.GET("/restaurant/:restaurantId",
			middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin),
			handlers.GetRestaurantOrders)
		orders.PUT("/:id/status",
			middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin, models.RoleDeliveryPartner),
			handlers.UpdateOrderStatus)
		orders.GET("/delivery/available",
			middleware.RoleRequired(models.RoleDeliveryPartner, models.RoleAdmin),
			handlers.GetAvailableDeliveries)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurants := r.Group("/api/restaurants")
	restaurants.Use(middleware.AuthRequired())
	{
		restaurants.GET("/my",
			middleware.RoleRequired(models.RoleRestaurantOwner),
			handlers.GetMyRestaurants)
		restaurants.POST("",
			middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin),
			handlers.CreateRestaurant)
		restaurants.POST("/:id/menu",
			middleware.RoleRequired(models.RoleRestaurantOwner),
			handlers.AddMenuItem)
	}

	// ── Menu item routes ───────────────────────────────────────────
	menuItems := r.Group("/api/menu-items")
	menuItems.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantOwner))
	{
		menuItems.PUT("/:id", handlers.UpdateMenuItem)
		menuItems.DELETE("/:id", handlers.DeleteMenuItem)
	}

	// ── Delivery partner routes ────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDeliveryPartner))
	{
		delivery.GET("/orders", handlers.GetAssignedOrders)
		delivery.GET("/orders/pool", handlers.GetOrderPool)
		delivery.PUT("/orders/:orderId/status", handlers.UpdateDeliveryOrderStatus)
	}
}
