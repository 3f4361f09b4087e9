package store

import (
	"sync"

	"github.com/mlefevre/boutique-api/pkg/global"
	"github.com/mlefevre/boutique-api/pkg/models"
)

// Catalog is the in-memory product catalog. All state lives in the map;
// a restart starts from an empty (or re-seeded) catalog. The mutex is
// there because gin dispatches requests on concurrent goroutines.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]models.Product
	ids      []string // insertion order, so listings are stable
}

func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]models.Product)}
}

// List returns every product with the derived image path attached.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.products[id].WithImagePath())
	}
	return out
}

// FindByID returns the stored product (bare image file name) or
// global.ErrNotFound.
func (c *Catalog) FindByID(id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return models.Product{}, global.ErrNotFound
	}
	return product, nil
}

// Add inserts a new product under id. Adding an id that already exists is
// global.ErrConflict.
func (c *Catalog) Add(id string, product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; ok {
		return global.ErrConflict
	}
	product.ID = id
	c.products[id] = product
	c.ids = append(c.ids, id)
	return nil
}

// Modify replaces the product stored under product.ID in full. Modifying
// an absent id is global.ErrNotFound.
func (c *Catalog) Modify(product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[product.ID]; !ok {
		return global.ErrNotFound
	}
	c.products[product.ID] = product
	return nil
}

// Delete removes the product under id. Deleting an absent id is a no-op.
func (c *Catalog) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; !ok {
		return
	}
	delete(c.products, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

// Reset drops every product. Test hook.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make(map[string]models.Product)
	c.ids = nil
}
