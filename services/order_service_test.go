package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopos/entity"
	"restopos/services"
)

func createOrder(t *testing.T, f *fixture, req *services.CreateOrderReq) *entity.Order {
	t.Helper()
	o, err := f.Orders.Create(1, req)
	require.NoError(t, err)
	return o
}

func dineInReq(tableID uint, items ...services.OrderItemIn) *services.CreateOrderReq {
	return &services.CreateOrderReq{
		OrderType: entity.OrderDineIn,
		TableID:   &tableID,
		Items:     items,
	}
}

func TestCreateOrder_ComputesTotals(t *testing.T) {
	f := setupServices(t)
	burger := seedMenuItem(t, f.DB, "Burger", "10.00")
	fries := seedMenuItem(t, f.DB, "Fries", "5.00")

	o := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items: []services.OrderItemIn{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: fries.ID, Quantity: 1},
		},
	})

	// default settings: 10% tax
	assert.Equal(t, "25.00", o.Subtotal.StringFixed(2))
	assert.Equal(t, "2.50", o.Tax.StringFixed(2))
	assert.Equal(t, "27.50", o.Total.StringFixed(2))
	assert.Equal(t, entity.OrderPending, o.Status)
	assert.Equal(t, entity.PaymentUnpaid, o.PaymentStatus)
	assert.Regexp(t, `^POS-\d{8}-[0-9A-F]{6}$`, o.OrderNumber)

	// order is never visible without its items
	loaded, err := f.Orders.Get(o.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "20.00", loaded.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", loaded.Items[1].Subtotal.StringFixed(2))
}

func TestCreateOrder_SnapshotsUnitPrice(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Soup", "6.00")

	o := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})

	// raise the menu price afterwards; the order must not move
	require.NoError(t, f.DB.Model(item).Update("price", "9.99").Error)
	loaded, err := f.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "6.00", loaded.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "6.00", loaded.Subtotal.StringFixed(2))
}

func TestCreateOrder_OrderNumbersDiffer(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Tea", "2.00")

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		o := createOrder(t, f, &services.CreateOrderReq{
			OrderType: entity.OrderTakeaway,
			Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
		})
		assert.False(t, seen[o.OrderNumber], "duplicate order number %s", o.OrderNumber)
		seen[o.OrderNumber] = true
	}
}

func TestCreateOrder_DineInChecks(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Steak", "20.00")

	_, err := f.Orders.Create(1, &services.CreateOrderReq{
		OrderType: entity.OrderDineIn,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	missing := uint(999)
	_, err = f.Orders.Create(1, &services.CreateOrderReq{
		OrderType: entity.OrderDineIn,
		TableID:   &missing,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateOrder_SeatsTable(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Pasta", "11.00")
	tbl := seedTable(t, f.DB, 1)

	createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))
	assert.Equal(t, entity.TableOccupied, tableStatus(t, f.DB, tbl.ID))
}

func TestCreateOrder_SeatingClearsReserved(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Pizza", "9.00")
	tbl := seedTable(t, f.DB, 2)

	_, err := f.Tables.SetStatus(tbl.ID, entity.TableReserved)
	require.NoError(t, err)

	createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))
	assert.Equal(t, entity.TableOccupied, tableStatus(t, f.DB, tbl.ID))
}

func TestCreateOrder_UnavailableItemRejected(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Special", "15.00")
	require.NoError(t, f.DB.Model(item).Update("available", false).Error)

	_, err := f.Orders.Create(1, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

// ----- lifecycle -----

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Curry", "13.00")
	o := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})

	for _, next := range []entity.OrderStatus{entity.OrderPreparing, entity.OrderReady, entity.OrderCompleted} {
		got, err := f.Orders.UpdateStatus(o.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}

	// completing settles the bill regardless of prior payment status
	final, err := f.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, final.PaymentStatus)
}

func TestUpdateStatus_IllegalMoves(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Salad", "7.00")
	o := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})

	// skipping a step is not in the transition table
	_, err := f.Orders.UpdateStatus(o.ID, entity.OrderReady)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// backwards is not either
	_, err = f.Orders.UpdateStatus(o.ID, entity.OrderStatus("PENDING_AGAIN"))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Cake", "4.00")

	completed := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	for _, next := range []entity.OrderStatus{entity.OrderPreparing, entity.OrderReady, entity.OrderCompleted} {
		_, err := f.Orders.UpdateStatus(completed.ID, next)
		require.NoError(t, err)
	}
	_, err := f.Orders.UpdateStatus(completed.ID, entity.OrderPreparing)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	_, err = f.Orders.UpdateStatus(completed.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	cancelled := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	_, err = f.Orders.Cancel(cancelled.ID)
	require.NoError(t, err)
	_, err = f.Orders.UpdateStatus(cancelled.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestUpdateStatus_RetryIsNoop(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Wrap", "8.00")
	o := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})

	for _, next := range []entity.OrderStatus{entity.OrderPreparing, entity.OrderReady, entity.OrderCompleted} {
		_, err := f.Orders.UpdateStatus(o.ID, next)
		require.NoError(t, err)
	}

	// re-issuing the terminal status succeeds without changing anything
	got, err := f.Orders.UpdateStatus(o.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, got.Status)

	// cancelling twice behaves the same way
	c := createOrder(t, f, &services.CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []services.OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	_, err = f.Orders.Cancel(c.ID)
	require.NoError(t, err)
	_, err = f.Orders.Cancel(c.ID)
	require.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := setupServices(t)
	_, err := f.Orders.UpdateStatus(4242, entity.OrderPreparing)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// ----- table reconciliation -----

func TestCancel_ReconcilesTable(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Noodles", "10.00")
	tbl := seedTable(t, f.DB, 5)

	first := createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))
	second := createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 2}))

	// one of two active orders cancelled: still occupied
	_, err := f.Orders.Cancel(first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableOccupied, tableStatus(t, f.DB, tbl.ID))

	// last active order gone: available again
	_, err = f.Orders.Cancel(second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, tableStatus(t, f.DB, tbl.ID))
}

func TestComplete_FreesTable(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Ramen", "12.00")
	tbl := seedTable(t, f.DB, 6)

	o := createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))
	for _, next := range []entity.OrderStatus{entity.OrderPreparing, entity.OrderReady} {
		_, err := f.Orders.UpdateStatus(o.ID, next)
		require.NoError(t, err)
	}
	assert.Equal(t, entity.TableOccupied, tableStatus(t, f.DB, tbl.ID))

	_, err := f.Orders.UpdateStatus(o.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, tableStatus(t, f.DB, tbl.ID))
}

func TestReconcile_NeverOverridesReserved(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Dumplings", "6.50")
	tbl := seedTable(t, f.DB, 7)

	o := createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))

	// staff reserves the table out of band while the order is still open
	require.NoError(t, f.DB.Model(&entity.Table{}).Where("id = ?", tbl.ID).
		Update("status", entity.TableReserved).Error)

	_, err := f.Orders.Cancel(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableReserved, tableStatus(t, f.DB, tbl.ID))
}
