// Package cart implements the cart engine: per-user carts whose line items are
// merged, updated, and removed against live stock levels read from the catalog.
//
// The engine deliberately performs no reservation and no locking. Stock is read
// once per mutating call and used as a gate only; cart operations never change
// stock. Interleaved requests on the same cart can therefore lose updates, and
// an increment on an existing line is not re-checked against the new total.
// Both are characterized by the tests rather than "fixed".
package cart

import (
	"context"
	"errors"

	"github.com/devmalik7/shopcart-api/models"
)

// Catalog is the product lookup the engine validates against.
type Catalog interface {
	// FindByID returns ErrProductNotFound when no such product exists.
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// Store persists carts. Save persists the cart's item list exactly as given:
// lines absent from Items are deleted, present ones are inserted or updated.
type Store interface {
	// FindByUser returns the user's cart with its items (products unresolved),
	// or ErrCartNotFound.
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	Save(ctx context.Context, cart *models.Cart) error
	// Resolve fills in the Product association of every line item.
	Resolve(ctx context.Context, cart *models.Cart) error
}

type Engine struct {
	catalog Catalog
	carts   Store
}

func NewEngine(catalog Catalog, carts Store) *Engine {
	return &Engine{catalog: catalog, carts: carts}
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (e *Engine) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := e.carts.FindByUser(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		c = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		if err := e.carts.Create(ctx, c); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := e.carts.Resolve(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem puts quantity units of a product into the user's cart. If the product
// is already a line item the quantity is incremented, not set. The stock gate
// applies to the requested quantity only: the post-merge total is NOT
// re-validated against stock.
func (e *Engine) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := e.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: product.Stock,
		}
	}

	c, err := e.carts.FindByUser(ctx, userID)
	switch {
	case errors.Is(err, ErrCartNotFound):
		c = &models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: quantity}},
		}
		if err := e.carts.Create(ctx, c); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if idx := itemIndex(c, productID); idx >= 0 {
			c.Items[idx].Quantity += quantity
		} else {
			c.Items = append(c.Items, models.CartItem{
				CartID:    c.ID,
				ProductID: productID,
				Quantity:  quantity,
			})
		}
		if err := e.carts.Save(ctx, c); err != nil {
			return nil, err
		}
	}

	if err := e.carts.Resolve(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateItemQuantity sets (not increments) the quantity of an existing line
// item. A product that has vanished from the catalog fails the stock gate the
// same way an out-of-stock one does.
func (e *Engine) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	c, err := e.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := itemIndex(c, productID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	product, err := e.catalog.FindByID(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return nil, &InsufficientStockError{ProductID: productID, Requested: quantity}
	}
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: product.Stock,
		}
	}

	c.Items[idx].Quantity = quantity
	if err := e.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := e.carts.Resolve(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem drops the line item for a product. Removing a product that is not
// in the cart is a no-op, so repeated calls are idempotent. The cart itself
// must exist.
func (e *Engine) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	c, err := e.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept

	if err := e.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := e.carts.Resolve(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart's item list, preserving the cart record itself.
func (e *Engine) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := e.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Items = []models.CartItem{}
	if err := e.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func itemIndex(c *models.Cart, productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
