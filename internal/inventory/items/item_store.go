package items

import (
	"strings"
	"sync"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"

	"github.com/google/uuid"
)

type IDGenerator func() string

// Store is the single source of truth for inventory items. Items keep their
// insertion order; every read hands out a copy.
type Store struct {
	mu    sync.RWMutex
	items []models.InventoryItem
	used  map[string]struct{}
	newID IDGenerator
}

// NewStore seeds the store with the given items. A nil generator falls back to uuid.
func NewStore(seed []models.InventoryItem, newID IDGenerator) *Store {
	if newID == nil {
		newID = uuid.NewString
	}

	s := &Store{
		items: make([]models.InventoryItem, 0, len(seed)),
		used:  make(map[string]struct{}, len(seed)),
		newID: newID,
	}
	for _, item := range seed {
		s.items = append(s.items, item)
		s.used[item.ID] = struct{}{}
	}

	return s
}

func (s *Store) List() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *Store) FilterByLocation(locationID string) []models.InventoryItem {
	return FilterByLocation(s.List(), locationID)
}

func (s *Store) Search(query string) []models.InventoryItem {
	return SearchByName(s.List(), query)
}

func (s *Store) Query(filter ItemFilter) []models.InventoryItem {
	return filter.Apply(s.List())
}

func (s *Store) Get(itemID string) (models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return models.InventoryItem{}, custom_error.NewNotFoundError("item", itemID)
	}

	return s.items[idx], nil
}

func (s *Store) AddItem(name string, count int, locationID string) (models.InventoryItem, error) {
	name = strings.TrimSpace(name)
	if err := ValidateNewItem(name, count, locationID); err != nil {
		return models.InventoryItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.InventoryItem{
		ID:       s.nextID(),
		Name:     name,
		Count:    count,
		Location: locationID,
	}
	s.items = append(s.items, item)

	return item, nil
}

// SetCount replaces the count of an item and returns the previous value.
func (s *Store) SetCount(itemID string, newCount int) (int, error) {
	if newCount < 0 {
		return 0, custom_error.NewValidationError("count", "count must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return 0, custom_error.NewNotFoundError("item", itemID)
	}

	previous := s.items[idx].Count
	s.items[idx].Count = newCount

	return previous, nil
}

func (s *Store) DeleteItem(itemID string) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return models.InventoryItem{}, custom_error.NewNotFoundError("item", itemID)
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	return removed, nil
}

// ApplyBatch subtracts every decrement or none of them. Quantities for the
// same item are summed before checking stock.
func (s *Store) ApplyBatch(decrements []models.Decrement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requested := make(map[string]int, len(decrements))
	var order []int
	for _, d := range decrements {
		if d.Quantity < 0 {
			return custom_error.NewValidationError("quantity", "quantity must not be negative")
		}
		idx := s.indexOf(d.ItemID)
		if idx < 0 {
			return custom_error.NewNotFoundError("item", d.ItemID)
		}
		if _, seen := requested[d.ItemID]; !seen {
			order = append(order, idx)
		}
		requested[d.ItemID] += d.Quantity
	}

	var insufficient []string
	for _, idx := range order {
		item := s.items[idx]
		if item.Count < requested[item.ID] {
			insufficient = append(insufficient, item.Name)
		}
	}
	if len(insufficient) > 0 {
		return custom_error.NewInsufficientStockError(insufficient)
	}

	for _, idx := range order {
		s.items[idx].Count -= requested[s.items[idx].ID]
	}

	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Store) snapshot() []models.InventoryItem {
	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(itemID string) int {
	for i := range s.items {
		if s.items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// nextID never hands out an id the store has seen, including deleted ones.
func (s *Store) nextID() string {
	for {
		id := s.newID()
		if _, taken := s.used[id]; taken || id == "" {
			continue
		}
		s.used[id] = struct{}{}
		return id
	}
}

func ValidateNewItem(name string, count int, locationID string) error {
	if strings.TrimSpace(name) == "" {
		return custom_error.NewValidationError("name", "name is required")
	}
	if count < 0 {
		return custom_error.NewValidationError("count", "count must not be negative")
	}
	if strings.TrimSpace(locationID) == "" {
		return custom_error.NewValidationError("location_id", "location is required")
	}
	return nil
}
