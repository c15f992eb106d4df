package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/models"
)

// seedProducts inserts the demo catalog. Skips when products already exist so it
// is safe to run against a live database.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("⏭️ Products already seeded (%d rows), skipping", count)
		return nil
	}

	products := []models.Product{
		{
			Name:        "MacBook Pro 16-inch",
			Description: "Powerful laptop with M2 Pro chip, 16GB RAM, and 512GB SSD. Perfect for professionals and creatives.",
			Price:       2499.99,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
			Stock:       25,
		},
		{
			Name:        "iPhone 15 Pro",
			Description: "Latest iPhone with A17 Pro chip, 256GB storage, and advanced camera system.",
			Price:       999.99,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1592750475338-74b7b21085ab",
			Stock:       50,
		},
		{
			Name:        "Sony WH-1000XM5 Headphones",
			Description: "Premium noise-canceling wireless headphones with exceptional sound quality.",
			Price:       399.99,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			Stock:       30,
		},
		{
			Name:        "Nike Air Max 270",
			Description: "Comfortable running shoes with air cushioning technology and modern design.",
			Price:       149.99,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
			Stock:       75,
		},
		{
			Name:        "Levi's 501 Original Jeans",
			Description: "Classic straight-fit jeans made from premium denim. Timeless style and durability.",
			Price:       89.99,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d",
			Stock:       100,
		},
		{
			Name:        "Cotton T-Shirt",
			Description: "Soft and comfortable 100% cotton t-shirt available in multiple colors.",
			Price:       24.99,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
			Stock:       200,
		},
		{
			Name:        "The Great Gatsby",
			Description: "Classic American novel by F. Scott Fitzgerald. Paperback edition with beautiful cover design.",
			Price:       12.99,
			Category:    "Books",
			ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f",
			Stock:       150,
		},
		{
			Name:        "JavaScript: The Definitive Guide",
			Description: "Comprehensive guide to JavaScript programming. Essential for web developers.",
			Price:       49.99,
			Category:    "Books",
			ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f",
			Stock:       80,
		},
		{
			Name:        "Standing Desk",
			Description: "Adjustable height standing desk with electric motor. Ergonomic design for home office.",
			Price:       399.99,
			Category:    "Furniture",
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7",
			Stock:       20,
		},
		{
			Name:        "Ergonomic Office Chair",
			Description: "Comfortable office chair with lumbar support and adjustable armrests.",
			Price:       299.99,
			Category:    "Furniture",
			ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267",
			Stock:       35,
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat with extra cushioning. Perfect for yoga, pilates, and home workouts.",
			Price:       34.99,
			Category:    "Sports",
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
			Stock:       120,
		},
		{
			Name:        "Dumbbell Set",
			Description: "Adjustable dumbbell set with multiple weight plates. Great for strength training at home.",
			Price:       199.99,
			Category:    "Sports",
			ImageURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
			Stock:       40,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d products", len(products))
	return nil
}
