package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	// Zero or negative removes the line, so no min constraint here.
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart, creating an empty one on first access.
func GetCart(c *gin.Context) {
	cart, err := services.GetCart(config.DB, middleware.GetEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// AddToCart adds a menu item to the caller's cart.
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := services.AddToCart(config.DB, middleware.GetEmail(c), req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cart})
}

// UpdateCartItem sets a line's quantity; zero or below removes the line.
func UpdateCartItem(c *gin.Context) {
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := services.UpdateCartItemQuantity(config.DB, middleware.GetEmail(c), itemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": cart})
}

// RemoveFromCart deletes a line; removing an absent line still succeeds.
func RemoveFromCart(c *gin.Context) {
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}

	cart, err := services.RemoveFromCart(config.DB, middleware.GetEmail(c), itemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart})
}

// ClearCart empties the caller's cart.
func ClearCart(c *gin.Context) {
	if err := services.ClearCart(config.DB, middleware.GetEmail(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
