package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type checkoutFixture struct {
	db          *gorm.DB
	orders      *services.OrderService
	carts       *services.CartService
	productRepo *repositories.GORMProductRepository
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	return &checkoutFixture{
		db:          db,
		orders:      services.NewOrderService(db, nil),
		carts:       services.NewCartService(cartRepo, productRepo),
		productRepo: productRepo,
	}
}

func (f *checkoutFixture) seedProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: price, Stock: stock, IsActive: true}
	require.NoError(t, f.productRepo.Create(product))
	return product
}

func (f *checkoutFixture) seedAddress(t *testing.T, userID string) *models.Address {
	t.Helper()
	address := &models.Address{
		UserID: userID, FullName: "Test User", PhoneNumber: "5550100",
		StreetLine: "1 Main St", City: "Pune", State: "MH", ZipCode: "411001",
	}
	require.NoError(t, repositories.NewGORMAddressRepository(f.db).Create(address))
	return address
}

func (f *checkoutFixture) seedCoupon(t *testing.T, coupon *models.Coupon) *models.Coupon {
	t.Helper()
	require.NoError(t, repositories.NewGORMCouponRepository(f.db).Create(coupon))
	return coupon
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.orders.Checkout("user-1", nil, nil)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckout_FreezesPricesAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Headphones", 300.0, 10)

	_, err := f.carts.AddItem("user-1", product.ID, 2)
	require.NoError(t, err)

	order, err := f.orders.Checkout("user-1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 600.0, order.Subtotal)
	assert.Equal(t, 0.0, order.ShippingCost) // no address given
	assert.Equal(t, 0.0, order.DiscountAmount)
	assert.Equal(t, 600.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 300.0, order.Items[0].PriceAtPurchase)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The frozen price survives a catalog price change.
	product.Price = 999.0
	require.NoError(t, f.productRepo.Update(product))
	reloaded, err := f.orders.GetOrder("user-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, reloaded.Items[0].PriceAtPurchase)

	// Stock is reserved and the cart is consumed.
	after, err := f.productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, after.Stock)
	cart, err := f.carts.GetOrCreate("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckout_MoneyInvariant(t *testing.T) {
	f := newCheckoutFixture(t)
	p1 := f.seedProduct(t, "Pen", 20.0, 100)
	p2 := f.seedProduct(t, "Notebook", 45.0, 100)
	address := f.seedAddress(t, "user-1")
	f.seedCoupon(t, &models.Coupon{
		Code: "FLAT30", DiscountType: models.DiscountTypeFlat, Value: 30, IsActive: true,
	})

	_, err := f.carts.AddItem("user-1", p1.ID, 3)
	require.NoError(t, err)
	_, err = f.carts.AddItem("user-1", p2.ID, 2)
	require.NoError(t, err)

	code := "FLAT30"
	order, err := f.orders.Checkout("user-1", &address.ID, &code)
	require.NoError(t, err)

	var lineSum float64
	for _, item := range order.Items {
		lineSum += float64(item.Quantity) * item.PriceAtPurchase
	}
	assert.Equal(t, lineSum, order.Subtotal)
	assert.Equal(t, order.Subtotal-order.DiscountAmount+order.ShippingCost, order.TotalAmount)
	// 150 subtotal < 500, so flat shipping applies.
	assert.Equal(t, 50.0, order.ShippingCost)
	assert.Equal(t, 30.0, order.DiscountAmount)
}

func TestCheckout_ShippingCostBranches(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Speaker", 300.0, 20)
	address := f.seedAddress(t, "user-1")

	// Subtotal 600 >= 500: free shipping even with an address.
	_, err := f.carts.AddItem("user-1", product.ID, 2)
	require.NoError(t, err)
	order, err := f.orders.Checkout("user-1", &address.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 600.0, order.TotalAmount)

	// Subtotal 300 < 500 with an address: flat fee.
	_, err = f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)
	order, err = f.orders.Checkout("user-1", &address.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, order.ShippingCost)
	assert.Equal(t, 350.0, order.TotalAmount)
}

func TestCheckout_ForeignAddressRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Cable", 10.0, 20)
	address := f.seedAddress(t, "someone-else")

	_, err := f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	_, err = f.orders.Checkout("user-1", &address.ID, nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCheckout_PercentCouponCapped(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Desk", 1000.0, 10)
	max := 100.0
	f.seedCoupon(t, &models.Coupon{
		Code: "OFF10", DiscountType: models.DiscountTypePercent, Value: 10,
		MaxDiscountAmount: &max, IsActive: true,
	})

	_, err := f.carts.AddItem("user-1", product.ID, 2)
	require.NoError(t, err)

	code := "OFF10"
	order, err := f.orders.Checkout("user-1", nil, &code)
	require.NoError(t, err)
	// 10% of 2000 is 200, capped at 100.
	assert.Equal(t, 100.0, order.DiscountAmount)
	assert.Equal(t, 1900.0, order.TotalAmount)
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "OFF10", *order.CouponCode)
}

func TestCheckout_CouponBelowMinimumSilentlyIgnored(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Lamp", 400.0, 10)
	f.seedCoupon(t, &models.Coupon{
		Code: "BIG", DiscountType: models.DiscountTypePercent, Value: 10,
		MinOrderAmount: 500, IsActive: true,
	})

	_, err := f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	code := "BIG"
	order, err := f.orders.Checkout("user-1", nil, &code)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.DiscountAmount)
	assert.Nil(t, order.CouponCode)
}

func TestCheckout_UnknownCouponSilentlyIgnored(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Chair", 250.0, 10)

	_, err := f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	code := "NOSUCH"
	order, err := f.orders.Checkout("user-1", nil, &code)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.DiscountAmount)
	assert.Nil(t, order.CouponCode)
}

func TestCheckout_ExpiredCouponIsHardFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Table", 800.0, 10)
	past := time.Now().Add(-time.Hour)
	f.seedCoupon(t, &models.Coupon{
		Code: "OLD", DiscountType: models.DiscountTypePercent, Value: 10,
		ValidTo: &past, IsActive: true,
	})

	_, err := f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	code := "OLD"
	_, err = f.orders.Checkout("user-1", nil, &code)
	assert.ErrorIs(t, err, services.ErrCouponExpired)

	// The failed checkout must not have touched stock or the cart.
	after, err := f.productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, after.Stock)
	cart, err := f.carts.GetOrCreate("user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckout_InsufficientStockRollsBackEverything(t *testing.T) {
	f := newCheckoutFixture(t)
	p1 := f.seedProduct(t, "Widget", 100.0, 10)
	p2 := f.seedProduct(t, "Gadget", 100.0, 5)

	_, err := f.carts.AddItem("user-1", p1.ID, 3)
	require.NoError(t, err)
	_, err = f.carts.AddItem("user-1", p2.ID, 4)
	require.NoError(t, err)

	// Someone buys gadgets out from under the cart before checkout.
	var sold models.Product
	require.NoError(t, f.db.First(&sold, "id = ?", p2.ID).Error)
	sold.Stock = 2
	require.NoError(t, f.db.Save(&sold).Error)

	_, err = f.orders.Checkout("user-1", nil, nil)
	var stockErr *services.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Gadget", stockErr.ProductName)
	assert.Equal(t, 4, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	// Nothing committed: the first line's decrement rolled back, no order
	// rows exist, and the cart is intact.
	w, err := f.productRepo.GetByID(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Stock)

	orders, err := f.orders.GetMyOrders("user-1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := f.carts.GetOrCreate("user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestGetOrder_OwnershipScoped(t *testing.T) {
	f := newCheckoutFixture(t)
	product := f.seedProduct(t, "Router", 150.0, 10)

	_, err := f.carts.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)
	order, err := f.orders.Checkout("user-1", nil, nil)
	require.NoError(t, err)

	_, err = f.orders.GetOrder("user-2", order.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = f.orders.GetOrder("user-1", "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
