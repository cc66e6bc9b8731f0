package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// GetAssignedOrders returns the orders assigned to the calling delivery
// partner.
func GetAssignedOrders(c *gin.Context) {
	orders, err := services.GetAssignedOrders(config.DB, middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderPool lists unassigned orders a partner could claim. Assignment is
// not implemented, so the pool is always empty.
func GetOrderPool(c *gin.Context) {
	orders, err := services.AvailableOrders(config.DB)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// UpdateDeliveryOrderStatus lets a delivery partner advance an order.
func UpdateDeliveryOrderStatus(c *gin.Context) {
	orderID, ok := idParam(c, "orderId")
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
