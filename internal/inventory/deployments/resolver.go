package deployments

import (
	"fmt"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

// Stock is the part of the inventory store the resolver reads and writes.
type Stock interface {
	List() []models.InventoryItem
	ApplyBatch(decrements []models.Decrement) error
}

// Line is one accepted catalog entry together with the item that covers it.
type Line struct {
	EntryID   string `json:"entry_id"`
	EntryName string `json:"entry_name"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
}

// Resolution is either an acceptance (Lines) or a rejection (Insufficient
// names the catalog entries that could not be covered).
type Resolution struct {
	Lines        []Line   `json:"lines"`
	Insufficient []string `json:"insufficient,omitempty"`
}

func (r Resolution) Accepted() bool {
	return len(r.Insufficient) == 0
}

func (r Resolution) Decrements() []models.Decrement {
	decrements := make([]models.Decrement, 0, len(r.Lines))
	for _, line := range r.Lines {
		decrements = append(decrements, models.Decrement{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return decrements
}

func (r Resolution) Total() int {
	total := 0
	for _, line := range r.Lines {
		total += line.Quantity
	}
	return total
}

func (r Resolution) Err() error {
	if r.Accepted() {
		return nil
	}
	return custom_error.NewInsufficientStockError(r.Insufficient)
}

type Resolver struct {
	catalog *Catalog
	stock   Stock
}

func NewResolver(c *Catalog, s Stock) *Resolver {
	return &Resolver{catalog: c, stock: s}
}

func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve checks a request against a snapshot of current stock without
// mutating anything. Entries are visited in catalog order and entries that
// share an item draw from the same remaining count.
func (r *Resolver) Resolve(req models.DeploymentRequest) Resolution {
	return resolve(r.catalog, req, r.stock.List())
}

// Deploy resolves the request and commits the decrements in one batch. When
// stock moves between resolving and applying, the request is resolved and
// applied once more before giving up.
func (r *Resolver) Deploy(req models.DeploymentRequest) (Resolution, error) {
	res, err := r.deployOnce(req)
	if _, lost := err.(*applyConflict); !lost {
		return res, err
	}

	res, err = r.deployOnce(req)
	if conflict, lost := err.(*applyConflict); lost {
		return Resolution{}, fmt.Errorf("apply deployment: %w", conflict.asEntries(res))
	}
	return res, err
}

// applyConflict is a stock error raised by the store after the request had
// already resolved against an older snapshot.
type applyConflict struct {
	stock *custom_error.InsufficientStockError
}

func (e *applyConflict) Error() string {
	return e.stock.Error()
}

// asEntries renames the store's item names to the catalog entries they cover.
func (e *applyConflict) asEntries(res Resolution) error {
	short := make(map[string]bool, len(e.stock.Items))
	for _, name := range e.stock.Items {
		short[name] = true
	}

	var entries []string
	for _, line := range res.Lines {
		if short[line.ItemName] {
			entries = append(entries, line.EntryName)
		}
	}
	if len(entries) == 0 {
		return e.stock
	}
	return custom_error.NewInsufficientStockError(entries)
}

func (r *Resolver) deployOnce(req models.DeploymentRequest) (Resolution, error) {
	empty := custom_error.NewValidationError("quantities", "select at least one item to deploy")
	if req.Total() == 0 {
		return Resolution{}, empty
	}

	res := r.Resolve(req)
	if !res.Accepted() {
		return res, res.Err()
	}
	if len(res.Lines) == 0 {
		return Resolution{}, empty
	}

	if err := r.stock.ApplyBatch(res.Decrements()); err != nil {
		if stockErr, ok := custom_error.AsInsufficientStock(err); ok {
			return res, &applyConflict{stock: stockErr}
		}
		return Resolution{}, fmt.Errorf("apply deployment: %w", err)
	}

	return res, nil
}

// Clamp bounds a requested quantity to what the matched item currently holds.
func (r *Resolver) Clamp(entryID string, qty int) (int, error) {
	entry, err := r.catalog.Lookup(entryID)
	if err != nil {
		return 0, err
	}

	item, ok := MatchItem(entry, r.stock.List())
	if !ok || qty < 0 {
		return 0, nil
	}
	if qty > item.Count {
		return item.Count, nil
	}
	return qty, nil
}

func (r *Resolver) Availability() []models.EntryAvailability {
	items := r.stock.List()
	entries := r.catalog.Entries()

	availability := make([]models.EntryAvailability, 0, len(entries))
	for _, entry := range entries {
		view := models.EntryAvailability{Entry: entry}
		if item, ok := MatchItem(entry, items); ok {
			view.ItemID = item.ID
			view.ItemName = item.Name
			view.Count = item.Count
			view.Available = item.Count > 0
		}
		availability = append(availability, view)
	}

	return availability
}

func resolve(catalog *Catalog, req models.DeploymentRequest, items []models.InventoryItem) Resolution {
	remaining := make(map[string]int)
	var lines []Line
	var insufficient []string

	for _, entry := range catalog.entries {
		qty := req[entry.ID]
		if qty <= 0 {
			continue
		}

		item, ok := MatchItem(entry, items)
		if !ok {
			insufficient = append(insufficient, entry.Name)
			continue
		}

		left, seen := remaining[item.ID]
		if !seen {
			left = item.Count
		}
		if left < qty {
			insufficient = append(insufficient, entry.Name)
			continue
		}
		remaining[item.ID] = left - qty

		lines = append(lines, Line{
			EntryID:   entry.ID,
			EntryName: entry.Name,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  qty,
		})
	}

	if len(insufficient) > 0 {
		return Resolution{Lines: []Line{}, Insufficient: insufficient}
	}
	if lines == nil {
		lines = []Line{}
	}
	return Resolution{Lines: lines}
}
