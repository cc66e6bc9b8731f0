package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PlaceOrder converts the caller's cart into an order.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.PlaceOrder(config.DB, middleware.GetEmail(c), req.AddressID, method)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns the caller's orders, newest first.
func GetMyOrders(c *gin.Context) {
	orders, err := services.GetUserOrders(config.DB, middleware.GetEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetRestaurantOrders returns a restaurant's orders, newest first.
func GetRestaurantOrders(c *gin.Context) {
	restaurantID, ok := idParam(c, "restaurantId")
	if !ok {
		return
	}
	orders, err := services.GetRestaurantOrders(config.DB, restaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// UpdateOrderStatus advances an order through its lifecycle. Role gating
// happens on the route; any allowed role may set any known status.
func UpdateOrderStatus(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.UpdateOrderStatus(config.DB, orderID, req.Status)
	if err != nil {
		if err == services.ErrOrderNotFound {
			fail(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// GetAvailableDeliveries lists orders in PREPARING or OUT_FOR_DELIVERY.
func GetAvailableDeliveries(c *gin.Context) {
	orders, err := services.GetAvailableDeliveries(config.DB)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
