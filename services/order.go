package services

import (
	"errors"
	"time"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// OrderResponse is the flattened projection returned by the order read
// operations.
type OrderResponse struct {
	ID                    uint                 `json:"id"`
	Restaurant            RestaurantInfo       `json:"restaurant"`
	Address               AddressInfo          `json:"address"`
	Items                 []OrderItemInfo      `json:"items"`
	TotalAmount           float64              `json:"total_amount"`
	Status                models.OrderStatus   `json:"status"`
	PaymentStatus         string               `json:"payment_status"`
	PaymentMethod         models.PaymentMethod `json:"payment_method"`
	CreatedAt             time.Time            `json:"created_at"`
	EstimatedDeliveryTime time.Time            `json:"estimated_delivery_time"`
	DeliveredAt           *time.Time           `json:"delivered_at"`
}

type RestaurantInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisine_type"`
}

type AddressInfo struct {
	ID          uint   `json:"id"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

type OrderItemInfo struct {
	ID       uint         `json:"id"`
	MenuItem MenuItemInfo `json:"menu_item"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
}

type MenuItemInfo struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	IsVeg bool    `json:"is_veg"`
}

// PlaceOrder converts the user's cart into an immutable order and clears the
// cart. The whole method runs in one transaction; the cart clear is still a
// separate step after the order save rather than an atomic compound write.
func PlaceOrder(db *gorm.DB, userEmail string, addressID uint, paymentMethod models.PaymentMethod) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := GetCart(tx, userEmail)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		user, err := UserByEmail(tx, userEmail)
		if err != nil {
			return err
		}

		var address models.Address
		if err := tx.First(&address, addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			return err
		}

		// The whole order is attributed to the first cart line's
		// restaurant. Mixed-restaurant carts are not validated; this
		// mirrors the upstream behaviour and is a known ambiguity.
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, cart.Items[0].MenuItem.RestaurantID).Error; err != nil {
			return err
		}

		if paymentMethod == "" {
			paymentMethod = models.PaymentCOD
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}

		order = models.Order{
			UserID:                user.ID,
			RestaurantID:          restaurant.ID,
			AddressID:             address.ID,
			Items:                 items,
			TotalAmount:           cart.TotalAmount,
			Status:                models.StatusPlaced,
			PaymentMethod:         paymentMethod,
			PaymentStatus:         "PENDING",
			EstimatedDeliveryTime: time.Now().Add(time.Duration(restaurant.DeliveryTime) * time.Minute),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return ClearCart(tx, userEmail)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus parses the status token and applies it. DELIVERED is the
// only status with side effects: it stamps DeliveredAt and marks the payment
// as paid. Role gating happens at the boundary, not here.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order.Status = parsed
	if parsed == models.StatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
		order.PaymentStatus = "PAID"
	}

	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetUserOrders returns the user's orders, newest first.
func GetUserOrders(db *gorm.DB, userEmail string) ([]OrderResponse, error) {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return nil, err
	}
	return projectOrders(db.Where("user_id = ?", user.ID))
}

// GetRestaurantOrders returns a restaurant's orders, newest first.
func GetRestaurantOrders(db *gorm.DB, restaurantID uint) ([]OrderResponse, error) {
	return projectOrders(db.Where("restaurant_id = ?", restaurantID))
}

// GetAvailableDeliveries lists orders a delivery partner could take on:
// those currently PREPARING or OUT_FOR_DELIVERY, newest first.
func GetAvailableDeliveries(db *gorm.DB) ([]OrderResponse, error) {
	return projectOrders(db.Where("status IN ?", []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
	}))
}

// GetAssignedOrders returns the orders assigned to a delivery partner.
func GetAssignedOrders(db *gorm.DB, partnerID uint) ([]models.Order, error) {
	var partner models.User
	if err := db.First(&partner, partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	var orders []models.Order
	err := db.Preload("Items.MenuItem").Preload("Restaurant").Preload("Address").
		Where("delivery_partner_id = ?", partnerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// AvailableOrders is a placeholder for an unassigned-order pool. There is no
// assignment algorithm; it always returns an empty slice.
func AvailableOrders(db *gorm.DB) ([]models.Order, error) {
	return []models.Order{}, nil
}

func projectOrders(query *gorm.DB) ([]OrderResponse, error) {
	var orders []models.Order
	err := query.Preload("Items.MenuItem").Preload("Restaurant").Preload("Address").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, mapOrderResponse(order))
	}
	return responses, nil
}

func mapOrderResponse(order models.Order) OrderResponse {
	items := make([]OrderItemInfo, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemInfo{
			ID:       item.ID,
			Quantity: item.Quantity,
			Price:    item.Price,
			MenuItem: MenuItemInfo{
				ID:    item.MenuItem.ID,
				Name:  item.MenuItem.Name,
				Price: item.MenuItem.Price,
				IsVeg: item.MenuItem.IsVeg,
			},
		})
	}
	return OrderResponse{
		ID: order.ID,
		Restaurant: RestaurantInfo{
			ID:          order.Restaurant.ID,
			Name:        order.Restaurant.Name,
			CuisineType: order.Restaurant.CuisineType,
		},
		Address: AddressInfo{
			ID:          order.Address.ID,
			AddressLine: order.Address.AddressLine,
			City:        order.Address.City,
			State:       order.Address.State,
			Pincode:     order.Address.Pincode,
		},
		Items:                 items,
		TotalAmount:           order.TotalAmount,
		Status:                order.Status,
		PaymentStatus:         order.PaymentStatus,
		PaymentMethod:         order.PaymentMethod,
		CreatedAt:             order.CreatedAt,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		DeliveredAt:           order.DeliveredAt,
	}
}
