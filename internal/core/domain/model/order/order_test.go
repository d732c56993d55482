package order_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, seq int) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)
	return id
}

func mustProductID(t *testing.T, s string) kernel.ProductID {
	t.Helper()
	id, err := kernel.NewProductID(s)
	require.NoError(t, err)
	return id
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_no_items", func(t *testing.T) {
		orderDate := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(mustOrderID(t, 1), "Alice", orderDate)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-1", o.ID().String())
		assert.Equal(t, "Alice", o.Customer())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.OrderDate().Equal(orderDate))
		assert.Empty(t, o.Items())
	})

	t.Run("zero_order_date_defaults_to_now", func(t *testing.T) {
		before := time.Now()

		o, err := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})

		require.NoError(t, err)
		assert.False(t, o.OrderDate().Before(before))
		assert.False(t, o.OrderDate().After(time.Now()))
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		var id kernel.OrderID

		_, err := order.NewOrder(id, "Alice", time.Time{})

		require.Error(t, err)
	})

	t.Run("rejects_empty_customer", func(t *testing.T) {
		_, err := order.NewOrder(mustOrderID(t, 1), "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("appends_new_lines_in_insertion_order", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})

		require.NoError(t, o.AddItem(mustProductID(t, "PROD-001"), 5))
		require.NoError(t, o.AddItem(mustProductID(t, "PROD-003"), 2))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "PROD-001", items[0].ProductID().String())
		assert.Equal(t, 5, items[0].Quantity())
		assert.Equal(t, "PROD-003", items[1].ProductID().String())
		assert.Equal(t, 2, items[1].Quantity())
	})

	t.Run("accumulates_existing_product_line", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})

		require.NoError(t, o.AddItem(mustProductID(t, "PROD-001"), 5))
		require.NoError(t, o.AddItem(mustProductID(t, "PROD-001"), 3))

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 8, items[0].Quantity())
	})

	t.Run("rejects_invalid_product_id", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})
		var pid kernel.ProductID

		require.Error(t, o.AddItem(pid, 5))
	})

	t.Run("items_returns_a_copy", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})
		require.NoError(t, o.AddItem(mustProductID(t, "PROD-001"), 5))

		items := o.Items()
		items[0] = order.Item{}

		assert.Equal(t, 5, o.Items()[0].Quantity())
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("overwrites_unconditionally", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Time{})

		o.UpdateStatus(order.Fulfilled)
		assert.Equal(t, order.Fulfilled, o.Status())
		assert.True(t, o.Status().IsFulfilled())

		o.UpdateStatus(order.Pending)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_items_and_status", func(t *testing.T) {
		items := []order.Item{}
		item, err := order.NewItem(mustProductID(t, "PROD-001"), 5)
		require.NoError(t, err)
		items = append(items, item)

		o, err := order.RestoreOrder(mustOrderID(t, 3), "Bob",
			time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), items, order.Fulfilled)

		require.NoError(t, err)
		assert.Equal(t, order.Fulfilled, o.Status())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(mustOrderID(t, 3), "Bob", time.Time{}, nil, order.Status("Lost"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Fulfilled.Validate())
	require.ErrorIs(t, order.Status("Shipped").Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status("").Validate(), errs.ErrValueIsInvalid)
}

func TestOrder_String(t *testing.T) {
	o, _ := order.NewOrder(mustOrderID(t, 1), "Alice", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, o.AddItem(mustProductID(t, "PROD-001"), 5))
	require.NoError(t, o.AddItem(mustProductID(t, "PROD-003"), 2))

	assert.Equal(t,
		"Order ID: ORD-1, Customer: Alice, Date: 2025-04-15, Status: Pending\n"+
			"  Items:\n"+
			"  - PROD-001: 5\n"+
			"  - PROD-003: 2",
		o.String())
}
