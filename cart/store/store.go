package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/audiophile/internal/log"
)

// Product is the catalog snapshot a line item is created from. Price and
// stock are captured at add-time and not re-fetched afterwards.
type Product struct {
	ID    uuid.UUID
	Price decimal.Decimal
	Stock int32
}

type LineItem struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ColorVariant string          `json:"color_variant,omitempty"`
	Quantity     int32           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Stock        int32           `json:"stock"`
}

// Storage persists the full line-item collection of one owner. The redis
// implementation is the durable storage; tests substitute the in-memory one.
type Storage interface {
	Save(c context.Context, ownerID string, items []LineItem) error
	Load(c context.Context, ownerID string) ([]LineItem, error)
	Clear(c context.Context, ownerID string) error
}

// A line item is identified by the (product, color variant) pair; the same
// product in two colors is two distinct lines.
type lineKey struct {
	productID    uuid.UUID
	colorVariant string
}

// Store holds the pending purchase list of one owner. It is not safe for
// concurrent use; each request works on its own Store loaded from Storage.
type Store struct {
	ownerID string
	storage Storage
	items   map[lineKey]LineItem
	keys    []lineKey
}

func Open(c context.Context, ownerID string, storage Storage) (*Store, error) {
	items, err := storage.Load(c, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed loading cart for owner=%s with error=%w", ownerID, err)
	}

	s := &Store{
		ownerID: ownerID,
		storage: storage,
		items:   map[lineKey]LineItem{},
		keys:    []lineKey{},
	}
	for _, item := range items {
		k := lineKey{productID: item.ProductID, colorVariant: item.ColorVariant}
		if _, ok := s.items[k]; !ok {
			s.keys = append(s.keys, k)
		}
		s.items[k] = item
	}
	return s, nil
}

// AddItem inserts a new line or merges into an existing one. A merge that
// would push the quantity above the product's stock is silently ignored,
// leaving the existing quantity unchanged; it is not clamped.
func (s *Store) AddItem(c context.Context, p Product, colorVariant string, quantity int32) {
	if quantity < 1 {
		quantity = 1
	}

	k := lineKey{productID: p.ID, colorVariant: colorVariant}
	existing, ok := s.items[k]
	if !ok {
		if quantity > p.Stock {
			return
		}
		s.items[k] = LineItem{
			ProductID:    p.ID,
			ColorVariant: colorVariant,
			Quantity:     quantity,
			UnitPrice:    p.Price,
			Stock:        p.Stock,
		}
		s.keys = append(s.keys, k)
		s.persist(c)
		return
	}

	merged := existing.Quantity + quantity
	if merged > p.Stock {
		return
	}
	existing.Quantity = merged
	existing.Stock = p.Stock
	s.items[k] = existing
	s.persist(c)
}

func (s *Store) RemoveItem(c context.Context, productID uuid.UUID, colorVariant string) {
	k := lineKey{productID: productID, colorVariant: colorVariant}
	if _, ok := s.items[k]; !ok {
		return
	}
	delete(s.items, k)
	for i, key := range s.keys {
		if key == k {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	s.persist(c)
}

// UpdateQuantity sets the line's quantity to min(quantity, stock at last
// read). Non-positive quantities and unknown lines are ignored.
func (s *Store) UpdateQuantity(
	c context.Context,
	productID uuid.UUID,
	colorVariant string,
	quantity int32,
) {
	if quantity <= 0 {
		return
	}
	k := lineKey{productID: productID, colorVariant: colorVariant}
	existing, ok := s.items[k]
	if !ok {
		return
	}
	if quantity > existing.Stock {
		quantity = existing.Stock
	}
	existing.Quantity = quantity
	s.items[k] = existing
	s.persist(c)
}

func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total
}

func (s *Store) Clear(c context.Context) {
	s.items = map[lineKey]LineItem{}
	s.keys = []lineKey{}

	err := s.storage.Clear(c, s.ownerID)
	if err != nil {
		err = fmt.Errorf("failed clearing cart for owner=%s with error=%w", s.ownerID, err)
		zerolog.Ctx(c).Error().Err(err).Str(log.KeyTag, "CartStore Clear").Msg(err.Error())
	}
}

func (s *Store) Items() []LineItem {
	items := make([]LineItem, 0, len(s.keys))
	for _, k := range s.keys {
		items = append(items, s.items[k])
	}
	return items
}

func (s *Store) Len() int {
	return len(s.items)
}

// persist writes the whole collection synchronously. A persistence failure
// is logged but never surfaced to the caller.
func (s *Store) persist(c context.Context) {
	err := s.storage.Save(c, s.ownerID, s.Items())
	if err != nil {
		err = fmt.Errorf("failed persisting cart for owner=%s with error=%w", s.ownerID, err)
		zerolog.Ctx(c).Error().Err(err).Str(log.KeyTag, "CartStore persist").Msg(err.Error())
	}
}
