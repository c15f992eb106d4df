package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;uniqueIndex" json:"userId"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is a single line in a cart. The composite unique index guarantees at
// most one line per product within a cart; quantity is always >= 1 because
// removals delete the row instead of zeroing it.
type CartItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"-"`
	CartID    string  `gorm:"size:36;index;uniqueIndex:idx_cart_item_product" json:"-"`
	ProductID string  `gorm:"size:36;uniqueIndex:idx_cart_item_product" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
