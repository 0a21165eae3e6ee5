package memory

import (
	"fmt"

	"github.com/google/uuid"

	"stockpile/pkg/supply"
)

// InventoryRepository provides an in-memory inventory store. It plays
// the role of the key-value persistence collaborator; the calculation
// engine itself never touches it.
type InventoryRepository struct {
	items []*supply.InventoryItem
}

// NewInventoryRepository creates an empty in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Add stores an item, minting an id when the record carries none, and
// returns the stored item
func (r *InventoryRepository) Add(item *supply.InventoryItem) *supply.InventoryItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items = append(r.items, item)
	return item
}

// All returns every stored item in insertion order
func (r *InventoryRepository) All() []*supply.InventoryItem {
	return r.items
}

// ByCategory returns the stored items belonging to a category
func (r *InventoryRepository) ByCategory(category supply.CategoryID) []*supply.InventoryItem {
	var items []*supply.InventoryItem
	for _, item := range r.items {
		if item.CategoryID == category {
			items = append(items, item)
		}
	}
	return items
}

// Get returns the item with the given id
func (r *InventoryRepository) Get(id string) (*supply.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("inventory item not found: %s", id)
}
