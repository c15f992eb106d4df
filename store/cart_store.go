// Package store provides the GORM-backed persistence behind the cart engine,
// plus an in-memory implementation used by tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devmalik7/shopcart-api/cart"
	"github.com/devmalik7/shopcart-api/models"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

func (s *CartStore) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var c models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cart.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CartStore) Create(ctx context.Context, c *models.Cart) error {
	return s.db.WithContext(ctx).Create(c).Error
}

// Save reconciles the persisted item rows with c.Items: rows for products no
// longer in the list are deleted, the rest are upserted on (cart_id, product_id).
func (s *CartStore) Save(ctx context.Context, c *models.Cart) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]string, 0, len(c.Items))
		for i := range c.Items {
			if c.Items[i].ID == "" {
				c.Items[i].ID = uuid.NewString()
			}
			c.Items[i].CartID = c.ID
			keep = append(keep, c.Items[i].ProductID)
		}

		del := tx.Where("cart_id = ?", c.ID)
		if len(keep) > 0 {
			del = del.Where("product_id NOT IN ?", keep)
		}
		if err := del.Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range c.Items {
			item := c.Items[i]
			item.Product = models.Product{} // never upsert the association
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
			}).Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Cart{}).
			Where("id = ?", c.ID).
			Update("updated_at", time.Now()).Error
	})
}

func (s *CartStore) Resolve(ctx context.Context, c *models.Cart) error {
	return s.db.WithContext(ctx).
		Preload("Items.Product").
		First(c, "id = ?", c.ID).Error
}
