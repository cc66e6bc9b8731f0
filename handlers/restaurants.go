package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Address      string  `json:"address" binding:"required"`
	CuisineType  string  `json:"cuisine_type"`
	ImageURL     string  `json:"image_url"`
	DeliveryTime int     `json:"delivery_time" binding:"required,gt=0"`
	AvgRating    float64 `json:"avg_rating"`
}

// ListRestaurants returns all active restaurants (public)
func ListRestaurants(c *gin.Context) {
	restaurants, err := services.ListRestaurants(config.DB)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant by id, active or not
func GetRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := services.GetRestaurant(config.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// SearchRestaurants does case-insensitive name search, with an optional
// cuisine filter instead when ?cuisine= is given.
func SearchRestaurants(c *gin.Context) {
	if cuisine := c.Query("cuisine"); cuisine != "" {
		restaurants, err := services.SearchRestaurantsByCuisine(config.DB, cuisine)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
		return
	}

	restaurants, err := services.SearchRestaurants(config.DB, c.Query("query"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetMyRestaurants returns the restaurants owned by the caller
func GetMyRestaurants(c *gin.Context) {
	restaurants, err := services.RestaurantsByOwner(config.DB, middleware.GetEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// CreateRestaurant creates a restaurant attributed to the caller
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		CuisineType:  req.CuisineType,
		ImageURL:     req.ImageURL,
		DeliveryTime: req.DeliveryTime,
		AvgRating:    req.AvgRating,
		IsActive:     true,
	}
	if err := services.CreateRestaurant(config.DB, &restaurant, middleware.GetEmail(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// GetMenu returns the menu for a restaurant (public)
func GetMenu(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	items, err := services.MenuByRestaurant(config.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsVeg       bool    `json:"is_veg"`
	ImageURL    string  `json:"image_url"`
}

// AddMenuItem adds a menu item to the restaurant
func AddMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsVeg:       req.IsVeg,
		ImageURL:    req.ImageURL,
	}
	if err := services.AddMenuItem(config.DB, id, &item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}
