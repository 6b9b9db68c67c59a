package repos

import "invtracker/internal/domain"

// SeedProducts returns the demo inventory loaded into an empty database.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 1500.0, Category: "Electronics", Available: true},
		{ID: 2, Name: "Smartphone", Price: 800.0, Category: "Electronics", Available: false},
		{ID: 3, Name: "Coffee Maker", Price: 100.0, Category: "Home Appliances", Available: true},
		{ID: 4, Name: "Blender", Price: 150.0, Category: "Home Appliances", Available: true},
		{ID: 5, Name: "T-Shirt", Price: 30.0, Category: "Apparel", Available: true},
		{ID: 6, Name: "Jeans", Price: 45.0, Category: "Apparel", Available: true},
		{ID: 7, Name: "Desk Lamp", Price: 89.99, Category: "Home Appliances", Available: false},
		{ID: 8, Name: "Wall Art", Price: 120.0, Category: "Home Decor", Available: true},
		{ID: 9, Name: "Sneakers", Price: 75.0, Category: "Apparel", Available: true},
		{ID: 10, Name: "Wristwatch", Price: 250.0, Category: "Accessories", Available: false},
		{ID: 11, Name: "Backpack", Price: 60.0, Category: "Accessories", Available: true},
		{ID: 12, Name: "Microwave Oven", Price: 99.0, Category: "Home Appliances", Available: false},
		{ID: 13, Name: "Floor Rug", Price: 150.0, Category: "Home Decor", Available: true},
		{ID: 14, Name: "Speaker", Price: 300.0, Category: "Electronics", Available: true},
		{ID: 15, Name: "E-reader", Price: 200.0, Category: "Electronics", Available: false},
		{ID: 16, Name: "Gaming Console", Price: 499.99, Category: "Electronics", Available: true},
		{ID: 17, Name: "Office Chair", Price: 220.0, Category: "Office Supplies", Available: true},
		{ID: 18, Name: "Pen Set", Price: 29.99, Category: "Office Supplies", Available: true},
		{ID: 19, Name: "Mountain Bike", Price: 489.0, Category: "Outdoor", Available: true},
		{ID: 20, Name: "Camping Tent", Price: 270.0, Category: "Outdoor", Available: false},
	}
}
