package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesQuantitiesByID(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	item := LineItem{ID: 7, Name: "Runner", Price: "59.99", Quantity: 2}
	cart.Dispatch(Intent{Type: AddItem, Item: item})
	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 7, Name: "ignored", Price: "0", Quantity: 3}})
	state := cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 7, Quantity: 1}})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 6, state.Items[0].Quantity)
	// Merging only touches quantity; the first write wins for display fields.
	assert.Equal(t, "Runner", state.Items[0].Name)
	assert.Equal(t, "59.99", state.Items[0].Price)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 3, Quantity: 1}})
	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 1, Quantity: 1}})
	state := cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 2, Quantity: 1}})

	ids := []int{state.Items[0].ID, state.Items[1].ID, state.Items[2].ID}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 1, Quantity: 1}})
	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 2, Quantity: 1}})

	state := cart.Dispatch(Intent{Type: RemoveItem, ID: 1})
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].ID)

	// Removing an absent id is a no-op.
	state = cart.Dispatch(Intent{Type: RemoveItem, ID: 99})
	assert.Len(t, state.Items, 1)
}

func TestUpdateQuantityReplacesStoredQuantity(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 5, Quantity: 1}})
	state := cart.Dispatch(Intent{Type: UpdateQuantity, ID: 5, Quantity: 4})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 4, state.Items[0].Quantity)
}

func TestToggleCartIsItsOwnInverse(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	assert.False(t, cart.State().IsOpen)
	assert.True(t, cart.Dispatch(Intent{Type: ToggleCart}).IsOpen)
	assert.False(t, cart.Dispatch(Intent{Type: ToggleCart}).IsOpen)
}

func TestClearCartEmptiesItemsOnly(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 1, Quantity: 2}})
	cart.Dispatch(Intent{Type: ToggleCart})

	state := cart.Dispatch(Intent{Type: ClearCart})
	assert.Empty(t, state.Items)
	assert.True(t, state.IsOpen)
}

func TestStateReturnsIsolatedSnapshot(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 1, Quantity: 1}})

	snap := cart.State()
	snap.Items[0].Quantity = 100

	assert.Equal(t, 1, cart.State().Items[0].Quantity)
}

func TestConcurrentDispatchesSerialize(t *testing.T) {
	cart := NewCart()
	defer cart.Close()

	const workers = 20
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 42, Quantity: 1}})
			}
		}()
	}
	wg.Wait()

	state := cart.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, workers*perWorker, state.Items[0].Quantity)
}

func TestDispatchAfterCloseReturnsEmptyState(t *testing.T) {
	cart := NewCart()
	cart.Dispatch(Intent{Type: AddItem, Item: LineItem{ID: 1, Quantity: 1}})
	cart.Close()
	cart.Close() // idempotent

	state := cart.Dispatch(Intent{Type: ToggleCart})
	assert.Empty(t, state.Items)
	assert.False(t, state.IsOpen)
}
