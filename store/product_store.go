package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/cart"
	"github.com/devmalik7/shopcart-api/models"
)

// ProductStore satisfies cart.Catalog on top of GORM.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cart.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
