package services

import (
	"testing"
	"time"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", models.RoleUser)
	address := seedAddress(t, db, user)

	_, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
	assert.ErrorIs(t, err, ErrCartEmpty)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownAddress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Pizza Palace", 30)
	pizza := seedMenuItem(t, db, restaurant, "Margherita", 9.50)

	_, err := AddToCart(db, user.Email, pizza.ID, 1)
	require.NoError(t, err)

	_, err = PlaceOrder(db, user.Email, 999, models.PaymentCOD)
	assert.ErrorIs(t, err, ErrAddressNotFound)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "carol@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Spice Garden", 35)
	curry := seedMenuItem(t, db, restaurant, "Paneer Curry", 8.00)
	naan := seedMenuItem(t, db, restaurant, "Garlic Naan", 2.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, curry.ID, 2)
	require.NoError(t, err)
	cart, err := AddToCart(db, user.Email, naan.ID, 4)
	require.NoError(t, err)

	before := time.Now()
	order, err := PlaceOrder(db, user.Email, address.ID, "")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, "PENDING", order.PaymentStatus)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	assert.Equal(t, restaurant.ID, order.RestaurantID)
	assert.Equal(t, address.ID, order.AddressID)
	assert.InDelta(t, cart.TotalAmount, order.TotalAmount, 1e-9)
	assert.Nil(t, order.DeliveredAt)

	// Estimated delivery = placement time + restaurant delivery minutes.
	eta := before.Add(35 * time.Minute)
	assert.WithinDuration(t, eta, order.EstimatedDeliveryTime, 5*time.Second)

	// Item snapshots equal the cart lines at call time.
	require.Len(t, order.Items, 2)
	byMenuItem := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byMenuItem[item.MenuItemID] = item
	}
	assert.Equal(t, 2, byMenuItem[curry.ID].Quantity)
	assert.Equal(t, 8.00, byMenuItem[curry.ID].Price)
	assert.Equal(t, 4, byMenuItem[naan.ID].Quantity)
	assert.Equal(t, 2.00, byMenuItem[naan.ID].Price)

	// Cart is cleared afterwards.
	cleared, err := GetCart(db, user.Email)
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.Zero(t, cleared.TotalAmount)
}

func TestPlaceOrderAttributesFirstRestaurant(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dan@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	first := seedRestaurant(t, db, owner, "Pizza Palace", 30)
	second := seedRestaurant(t, db, owner, "Burger Kingdom", 25)
	pizza := seedMenuItem(t, db, first, "Margherita", 9.50)
	burger := seedMenuItem(t, db, second, "Classic Burger", 6.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, pizza.ID, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, user.Email, burger.ID, 1)
	require.NoError(t, err)

	// Mixed-restaurant cart collapses onto the first line's restaurant.
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, first.ID, order.RestaurantID)
	assert.Len(t, order.Items, 2)
}

func TestUpdateOrderStatusDeliveredSideEffects(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "erin@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Sushi World", 40)
	roll := seedMenuItem(t, db, restaurant, "California Roll", 11.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, roll.ID, 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentUPI)
	require.NoError(t, err)

	// A non-terminal transition has no side effects.
	updated, err := UpdateOrderStatus(db, order.ID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Nil(t, updated.DeliveredAt)
	assert.Equal(t, "PENDING", updated.PaymentStatus)

	updated, err = UpdateOrderStatus(db, order.ID, "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
	assert.WithinDuration(t, time.Now(), *updated.DeliveredAt, 5*time.Second)
	assert.Equal(t, "PAID", updated.PaymentStatus)
}

func TestUpdateOrderStatusUnknownToken(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "frank@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Pizza Palace", 30)
	pizza := seedMenuItem(t, db, restaurant, "Margherita", 9.50)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, pizza.ID, 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
	require.NoError(t, err)

	_, err = UpdateOrderStatus(db, order.ID, "TELEPORTED")
	require.Error(t, err)

	var unchanged models.Order
	require.NoError(t, db.First(&unchanged, order.ID).Error)
	assert.Equal(t, models.StatusPlaced, unchanged.Status)
	assert.Equal(t, "PENDING", unchanged.PaymentStatus)
}

func TestUpdateOrderStatusCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "grace@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Burger Kingdom", 25)
	burger := seedMenuItem(t, db, restaurant, "Classic Burger", 6.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, burger.ID, 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
	require.NoError(t, err)

	updated, err := UpdateOrderStatus(db, order.ID, "preparing")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, updated.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateOrderStatus(db, 424242, "CONFIRMED")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetAvailableDeliveriesFiltersStatuses(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "henry@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Spice Garden", 35)
	curry := seedMenuItem(t, db, restaurant, "Paneer Curry", 8.00)
	address := seedAddress(t, db, user)

	statuses := []string{"PLACED", "PREPARING", "OUT_FOR_DELIVERY", "DELIVERED", "CANCELLED"}
	for range statuses {
		_, err := AddToCart(db, user.Email, curry.ID, 1)
		require.NoError(t, err)
		_, err = PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
		require.NoError(t, err)
	}
	var orders []models.Order
	require.NoError(t, db.Order("id asc").Find(&orders).Error)
	require.Len(t, orders, len(statuses))
	for i, status := range statuses {
		if status == "PLACED" {
			continue
		}
		_, err := UpdateOrderStatus(db, orders[i].ID, status)
		require.NoError(t, err)
	}

	available, err := GetAvailableDeliveries(db)
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, o := range available {
		assert.Contains(t, []models.OrderStatus{models.StatusPreparing, models.StatusOutForDelivery}, o.Status)
	}
}

func TestGetUserOrdersProjection(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "iris@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Sushi World", 40)
	roll := seedMenuItem(t, db, restaurant, "California Roll", 11.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, roll.ID, 2)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
	require.NoError(t, err)

	responses, err := GetUserOrders(db, user.Email)
	require.NoError(t, err)
	require.Len(t, responses, 1)

	got := responses[0]
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, restaurant.Name, got.Restaurant.Name)
	assert.Equal(t, restaurant.CuisineType, got.Restaurant.CuisineType)
	assert.Equal(t, address.AddressLine, got.Address.AddressLine)
	assert.Equal(t, address.Pincode, got.Address.Pincode)
	require.Len(t, got.Items, 1)
	assert.Equal(t, roll.Name, got.Items[0].MenuItem.Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 11.00, got.Items[0].Price)
}

func TestGetRestaurantOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jack@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner, "Pizza Palace", 30)
	pizza := seedMenuItem(t, db, restaurant, "Margherita", 9.50)
	address := seedAddress(t, db, user)

	var first *models.Order
	for i := 0; i < 2; i++ {
		_, err := AddToCart(db, user.Email, pizza.ID, 1)
		require.NoError(t, err)
		order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
		require.NoError(t, err)
		if first == nil {
			first = order
		}
	}
	// Force distinct creation times so descending order is observable.
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	responses, err := GetRestaurantOrders(db, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.True(t, responses[0].CreatedAt.After(responses[1].CreatedAt))
}

func TestGetAssignedOrders(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "kate@example.com", models.RoleUser)
	owner := seedUser(t, db, "owner@example.com", models.RoleRestaurantOwner)
	partner := seedUser(t, db, "rider@example.com", models.RoleDeliveryPartner)
	restaurant := seedRestaurant(t, db, owner, "Burger Kingdom", 25)
	burger := seedMenuItem(t, db, restaurant, "Classic Burger", 6.00)
	address := seedAddress(t, db, user)

	_, err := AddToCart(db, user.Email, burger.ID, 1)
	require.NoError(t, err)
	order, err := PlaceOrder(db, user.Email, address.ID, models.PaymentCOD)
	require.NoError(t, err)

	assigned, err := GetAssignedOrders(db, partner.ID)
	require.NoError(t, err)
	assert.Empty(t, assigned)

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("delivery_partner_id", partner.ID).Error)

	assigned, err = GetAssignedOrders(db, partner.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, order.ID, assigned[0].ID)
}

func TestAvailableOrdersIsEmptyStub(t *testing.T) {
	db := newTestDB(t)

	orders, err := AvailableOrders(db)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
