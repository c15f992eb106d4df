package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/devmalik7/shopcart-api/cart"
	"github.com/devmalik7/shopcart-api/models"
)

// Memory is an in-process cart.Store and cart.Catalog backed by maps. It exists
// for the engine and handler tests; it mirrors the GORM store's contract,
// including returning defensive copies so callers cannot mutate stored state.
type Memory struct {
	mu       sync.Mutex
	products map[string]models.Product
	carts    map[string]models.Cart // keyed by user ID
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[string]models.Product),
		carts:    make(map[string]models.Cart),
	}
}

// AddProduct registers a product, assigning an ID when empty, and returns it.
func (m *Memory) AddProduct(p models.Product) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.products[p.ID] = p
	return p
}

// RemoveProduct deletes a product from the catalog, leaving any cart lines that
// reference it dangling.
func (m *Memory) RemoveProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
}

// SetStock overwrites a product's stock level, simulating a concurrent sale or
// restock between cart operations.
func (m *Memory) SetStock(productID string, stock int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return
	}
	p.Stock = stock
	m.products[productID] = p
}

func (m *Memory) FindByID(ctx context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, cart.ErrProductNotFound
	}
	out := p
	return &out, nil
}

func (m *Memory) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	out := copyCart(c)
	return &out, nil
}

func (m *Memory) Create(ctx context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for i := range c.Items {
		if c.Items[i].ID == "" {
			c.Items[i].ID = uuid.NewString()
		}
		c.Items[i].CartID = c.ID
	}
	m.carts[c.UserID] = copyCart(*c)
	return nil
}

func (m *Memory) Save(ctx context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[c.UserID]; !ok {
		return cart.ErrCartNotFound
	}
	for i := range c.Items {
		if c.Items[i].ID == "" {
			c.Items[i].ID = uuid.NewString()
		}
		c.Items[i].CartID = c.ID
	}
	m.carts[c.UserID] = copyCart(*c)
	return nil
}

func (m *Memory) Resolve(ctx context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range c.Items {
		if p, ok := m.products[c.Items[i].ProductID]; ok {
			c.Items[i].Product = p
		}
	}
	return nil
}

func copyCart(c models.Cart) models.Cart {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
