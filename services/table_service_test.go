package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopos/entity"
	"restopos/services"
)

func TestTableCreate_DuplicateNumberConflicts(t *testing.T) {
	f := setupServices(t)

	_, err := f.Tables.Create(&services.TableIn{TableNumber: 1, Capacity: 4})
	require.NoError(t, err)

	_, err = f.Tables.Create(&services.TableIn{TableNumber: 1, Capacity: 2})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestTableUpdate_KeepsNumberUnique(t *testing.T) {
	f := setupServices(t)

	first, err := f.Tables.Create(&services.TableIn{TableNumber: 1, Capacity: 4})
	require.NoError(t, err)
	second, err := f.Tables.Create(&services.TableIn{TableNumber: 2, Capacity: 4})
	require.NoError(t, err)

	// renumbering onto an existing table is a conflict
	_, err = f.Tables.Update(second.ID, &services.TableIn{TableNumber: 1, Capacity: 4})
	assert.ErrorIs(t, err, services.ErrConflict)

	// updating in place is fine
	got, err := f.Tables.Update(first.ID, &services.TableIn{TableNumber: 1, Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, got.Capacity)
}

func TestTableSetStatus_ManualRules(t *testing.T) {
	f := setupServices(t)
	tbl := seedTable(t, f.DB, 3)

	// OCCUPIED is derived, never set by hand
	_, err := f.Tables.SetStatus(tbl.ID, entity.TableOccupied)
	assert.ErrorIs(t, err, services.ErrValidation)

	got, err := f.Tables.SetStatus(tbl.ID, entity.TableReserved)
	require.NoError(t, err)
	assert.Equal(t, entity.TableReserved, got.Status)

	got, err = f.Tables.SetStatus(tbl.ID, entity.TableAvailable)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, got.Status)
}

func TestTableSetStatus_AvailableBlockedByActiveOrders(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Kebab", "9.00")
	tbl := seedTable(t, f.DB, 4)

	createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))

	_, err := f.Tables.SetStatus(tbl.ID, entity.TableAvailable)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestTableDelete_BlockedByActiveOrders(t *testing.T) {
	f := setupServices(t)
	item := seedMenuItem(t, f.DB, "Tacos", "8.00")
	tbl := seedTable(t, f.DB, 5)

	o := createOrder(t, f, dineInReq(tbl.ID, services.OrderItemIn{MenuItemID: item.ID, Quantity: 1}))

	err := f.Tables.Delete(tbl.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = f.Orders.Cancel(o.ID)
	require.NoError(t, err)
	assert.NoError(t, f.Tables.Delete(tbl.ID))
}
