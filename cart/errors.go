package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrCartNotFound is returned by Store implementations and by engine
	// operations that require an existing cart.
	ErrCartNotFound = errors.New("cart not found")

	// ErrProductNotFound is returned when the referenced product does not exist
	// in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound is returned by UpdateItemQuantity when the product is not
	// a line item in the user's cart.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrInvalidQuantity is returned when a quantity below 1 reaches the engine.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// InsufficientStockError reports a failed stock gate. Available is the stock
// level read at call time; the check is point-in-time only, no reservation is
// taken.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err is a stock-gate failure.
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
