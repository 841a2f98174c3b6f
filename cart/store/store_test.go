package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/audiophile/cart/storage"
	"github.com/Alturino/audiophile/cart/store"
)

func openStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s, err := store.Open(context.Background(), uuid.NewString(), mem)
	require.NoError(t, err)
	return s, mem
}

func TestAddItemInsertsNewLine(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(1000), Stock: 5}

	s.AddItem(c, p, "", 1)

	require.Equal(t, 1, s.Len())
	assert.True(t, decimal.NewFromInt(1000).Equal(s.Total()))
	items := s.Items()
	assert.EqualValues(t, 1, items[0].Quantity)
	assert.EqualValues(t, 5, items[0].Stock)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(250), Stock: 3}

	s.AddItem(c, p, "", 0)

	require.Equal(t, 1, s.Len())
	assert.EqualValues(t, 1, s.Items()[0].Quantity)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(1000), Stock: 5}

	s.AddItem(c, p, "", 2)
	s.AddItem(c, p, "", 2)

	require.Equal(t, 1, s.Len())
	assert.EqualValues(t, 4, s.Items()[0].Quantity)
}

func TestAddItemExceedingStockIsNoOp(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(1000), Stock: 5}

	s.AddItem(c, p, "", 3)
	s.AddItem(c, p, "", 3)

	// 3+3 exceeds stock 5 so the second add is ignored, not clamped.
	require.Equal(t, 1, s.Len())
	assert.EqualValues(t, 3, s.Items()[0].Quantity)
}

func TestAddItemNeverExceedsStock(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	stock := int32(4)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(10), Stock: stock}

	for range 10 {
		s.AddItem(c, p, "", 1)
	}

	require.Equal(t, 1, s.Len())
	assert.EqualValues(t, stock, s.Items()[0].Quantity)
}

func TestAddItemFirstAddAboveStockIsIgnored(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(10), Stock: 2}

	s.AddItem(c, p, "", 3)

	assert.Equal(t, 0, s.Len())
}

func TestColorVariantsAreDistinctLines(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(500), Stock: 10}

	s.AddItem(c, p, "", 1)
	s.AddItem(c, p, "red", 1)

	require.Equal(t, 2, s.Len())

	s.RemoveItem(c, p.ID, "")

	items := s.Items()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "red", items[0].ColorVariant)
}

func TestRemoveItemUnknownLineIsNoOp(t *testing.T) {
	c := context.Background()
	s, mem := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(500), Stock: 10}
	s.AddItem(c, p, "", 1)
	saves := mem.SaveCount()

	s.RemoveItem(c, uuid.New(), "")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, saves, mem.SaveCount())
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(100), Stock: 5}
	s.AddItem(c, p, "", 1)

	s.UpdateQuantity(c, p.ID, "", 9)

	assert.EqualValues(t, 5, s.Items()[0].Quantity)
}

func TestUpdateQuantityIgnoresNonPositive(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(100), Stock: 5}
	s.AddItem(c, p, "", 2)

	s.UpdateQuantity(c, p.ID, "", 0)
	s.UpdateQuantity(c, p.ID, "", -3)

	assert.EqualValues(t, 2, s.Items()[0].Quantity)
}

func TestTotalTracksLineContributions(t *testing.T) {
	c := context.Background()
	s, _ := openStore(t)
	first := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(1000), Stock: 5}
	second := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(500), Stock: 5}

	s.AddItem(c, first, "", 2)
	assert.True(t, decimal.NewFromInt(2000).Equal(s.Total()))

	s.AddItem(c, second, "", 1)
	assert.True(t, decimal.NewFromInt(2500).Equal(s.Total()))

	s.RemoveItem(c, first.ID, "")
	assert.True(t, decimal.NewFromInt(500).Equal(s.Total()))

	s.Clear(c)
	assert.True(t, decimal.Zero.Equal(s.Total()))
	assert.Equal(t, 0, s.Len())
}

func TestEveryMutationPersists(t *testing.T) {
	c := context.Background()
	s, mem := openStore(t)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(100), Stock: 5}

	s.AddItem(c, p, "", 1)
	assert.Equal(t, 1, mem.SaveCount())

	s.UpdateQuantity(c, p.ID, "", 3)
	assert.Equal(t, 2, mem.SaveCount())

	s.RemoveItem(c, p.ID, "")
	assert.Equal(t, 3, mem.SaveCount())
}

func TestOpenRestoresPersistedItems(t *testing.T) {
	c := context.Background()
	mem := storage.NewMemory()
	ownerID := uuid.NewString()

	s, err := store.Open(c, ownerID, mem)
	require.NoError(t, err)
	p := store.Product{ID: uuid.New(), Price: decimal.NewFromInt(750), Stock: 4}
	s.AddItem(c, p, "silver", 2)

	reopened, err := store.Open(c, ownerID, mem)
	require.NoError(t, err)

	require.Equal(t, 1, reopened.Len())
	item := reopened.Items()[0]
	assert.Equal(t, p.ID, item.ProductID)
	assert.Equal(t, "silver", item.ColorVariant)
	assert.EqualValues(t, 2, item.Quantity)
	assert.True(t, decimal.NewFromInt(1500).Equal(reopened.Total()))
}
