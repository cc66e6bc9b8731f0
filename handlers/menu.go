package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// UpdateMenuItem replaces every mutable field of a menu item.
func UpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.UpdateMenuItem(config.DB, id, models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsVeg:       req.IsVeg,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem hard-deletes a menu item.
func DeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteMenuItem(config.DB, id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
