package seed

import (
	categorydomain "github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
)

// Categories are recreated from scratch on every run.
var Categories = []categorydomain.CategoryForm{
	{Name: "Appetizers", NameAr: "مقبلات", Description: "Starter dishes and small plates"},
	{Name: "Main Course", NameAr: "طبق رئيسي", Description: "Primary dishes and entrees"},
	{Name: "Desserts", NameAr: "حلويات", Description: "Sweet dishes and treats"},
	{Name: "Beverages", NameAr: "مشروبات", Description: "Drinks and refreshments"},
	{Name: "Sides", NameAr: "أطباق جانبية", Description: "Side dishes and accompaniments"},
	{Name: "Sauces", NameAr: "صلصات", Description: "Sauces and condiments"},
	{Name: "Salads", NameAr: "سلطات", Description: "Fresh salads and greens"},
	{Name: "Bakery", NameAr: "مخبوزات", Description: "Baked goods and breads"},
}

func item(name, category, unit string, current, low, high float64) inventorydomain.ItemForm {
	return inventorydomain.ItemForm{
		Name:            name,
		Category:        category,
		Unit:            unit,
		CurrentQuantity: current,
		MinThreshold:    low,
		MaxThreshold:    high,
	}
}

// InventoryItems only use the categories the API accepts: meat, dairy, other.
var InventoryItems = []inventorydomain.ItemForm{
	// Vegetables
	item("Lettuce", "other", "kg", 50, 10, 100),
	item("Tomatoes", "other", "kg", 40, 8, 80),
	item("Onions", "other", "kg", 35, 10, 70),
	item("Cucumbers", "other", "kg", 25, 5, 50),
	item("Bell Peppers", "other", "kg", 20, 5, 40),
	item("Potatoes", "other", "kg", 60, 15, 120),
	item("Carrots", "other", "kg", 30, 8, 60),

	// Proteins
	item("Chicken Breast", "meat", "kg", 45, 10, 90),
	item("Ground Beef", "meat", "kg", 40, 10, 80),
	item("Salmon Fillet", "meat", "kg", 20, 5, 40),
	item("Shrimp", "meat", "kg", 15, 5, 30),
	item("Eggs", "dairy", "pcs", 200, 50, 400),

	// Dairy
	item("Milk", "dairy", "l", 50, 15, 100),
	item("Heavy Cream", "dairy", "l", 20, 5, 40),
	item("Butter", "dairy", "kg", 15, 3, 30),
	item("Mozzarella Cheese", "dairy", "kg", 25, 5, 50),
	item("Parmesan Cheese", "dairy", "kg", 10, 2, 20),

	// Pantry
	item("Flour", "other", "kg", 100, 20, 200),
	item("Sugar", "other", "kg", 50, 10, 100),
	item("Salt", "other", "kg", 20, 5, 40),
	item("Olive Oil", "other", "l", 30, 8, 60),
	item("Pasta", "other", "kg", 40, 10, 80),
	item("Rice", "other", "kg", 50, 15, 100),
	item("Bread", "other", "pcs", 50, 20, 100),

	// Sauces and condiments
	item("Tomato Sauce", "other", "l", 25, 5, 50),
	item("Soy Sauce", "other", "l", 10, 3, 20),
	item("Mayonnaise", "other", "l", 15, 4, 30),
	item("Ketchup", "other", "l", 12, 3, 24),

	// Beverage bases
	item("Coffee Beans", "other", "kg", 20, 5, 40),
	item("Tea Leaves", "other", "kg", 10, 2, 20),
	item("Orange Juice", "other", "l", 30, 10, 60),

	// Dessert ingredients
	item("Chocolate", "other", "kg", 15, 3, 30),
	item("Vanilla Extract", "other", "l", 5, 1, 10),
	item("Cocoa Powder", "other", "kg", 10, 2, 20),
}

// Ingredient refers to an inventory item by name. Its id is resolved against
// the live inventory when products are built.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

type Recipe struct {
	Name              string
	Category          string
	Description       string
	PrepTimeMinutes   int
	PrepIntervalHours int
	Ingredients       []Ingredient
}

var Recipes = []Recipe{
	{"Caesar Salad", "Appetizers", "Classic Caesar salad with romaine lettuce and parmesan", 15, 4, []Ingredient{
		{"Lettuce", 0.5, "kg"}, {"Parmesan Cheese", 0.1, "kg"}, {"Bread", 2, "pcs"}, {"Olive Oil", 0.1, "l"},
	}},
	{"Tomato Soup", "Appetizers", "Creamy tomato soup", 30, 6, []Ingredient{
		{"Tomatoes", 2, "kg"}, {"Onions", 0.3, "kg"}, {"Heavy Cream", 0.5, "l"}, {"Olive Oil", 0.05, "l"},
	}},
	{"Garlic Bread", "Appetizers", "Toasted bread with garlic butter", 10, 2, []Ingredient{
		{"Bread", 5, "pcs"}, {"Butter", 0.2, "kg"},
	}},
	{"Grilled Chicken", "Main Course", "Herb-marinated grilled chicken breast", 45, 4, []Ingredient{
		{"Chicken Breast", 3, "kg"}, {"Olive Oil", 0.2, "l"}, {"Bell Peppers", 0.5, "kg"},
	}},
	{"Spaghetti Bolognese", "Main Course", "Classic Italian pasta with meat sauce", 60, 6, []Ingredient{
		{"Pasta", 2, "kg"}, {"Ground Beef", 2, "kg"}, {"Tomato Sauce", 1.5, "l"}, {"Onions", 0.5, "kg"},
	}},
	{"Grilled Salmon", "Main Course", "Fresh salmon fillet with herbs", 25, 3, []Ingredient{
		{"Salmon Fillet", 2, "kg"}, {"Olive Oil", 0.1, "l"}, {"Carrots", 0.5, "kg"},
	}},
	{"Beef Steak", "Main Course", "Premium beef steak with seasoning", 30, 4, []Ingredient{
		{"Ground Beef", 3, "kg"}, {"Butter", 0.1, "kg"}, {"Potatoes", 1, "kg"},
	}},
	{"Vegetable Stir Fry", "Main Course", "Mixed vegetables with soy sauce", 20, 4, []Ingredient{
		{"Bell Peppers", 1, "kg"}, {"Onions", 0.5, "kg"}, {"Carrots", 0.5, "kg"}, {"Soy Sauce", 0.2, "l"}, {"Rice", 1, "kg"},
	}},
	{"Chocolate Cake", "Desserts", "Rich chocolate layer cake", 90, 12, []Ingredient{
		{"Flour", 1, "kg"}, {"Sugar", 0.8, "kg"}, {"Chocolate", 0.5, "kg"}, {"Eggs", 12, "pcs"}, {"Butter", 0.4, "kg"}, {"Milk", 0.5, "l"},
	}},
	{"Vanilla Ice Cream", "Desserts", "Homemade vanilla ice cream", 120, 24, []Ingredient{
		{"Heavy Cream", 2, "l"}, {"Milk", 1, "l"}, {"Sugar", 0.5, "kg"}, {"Vanilla Extract", 0.05, "l"},
	}},
	{"Tiramisu", "Desserts", "Classic Italian coffee-flavored dessert", 60, 12, []Ingredient{
		{"Heavy Cream", 1, "l"}, {"Coffee Beans", 0.2, "kg"}, {"Sugar", 0.3, "kg"}, {"Cocoa Powder", 0.1, "kg"},
	}},
	{"Fresh Coffee", "Beverages", "Freshly brewed coffee", 10, 2, []Ingredient{
		{"Coffee Beans", 0.5, "kg"},
	}},
	{"Iced Tea", "Beverages", "Refreshing iced tea", 20, 4, []Ingredient{
		{"Tea Leaves", 0.1, "kg"}, {"Sugar", 0.3, "kg"},
	}},
	{"French Fries", "Sides", "Crispy golden fries", 20, 3, []Ingredient{
		{"Potatoes", 5, "kg"}, {"Salt", 0.05, "kg"},
	}},
	{"Mixed Vegetables", "Sides", "Steamed mixed vegetables", 15, 4, []Ingredient{
		{"Carrots", 1, "kg"}, {"Bell Peppers", 0.5, "kg"}, {"Butter", 0.1, "kg"},
	}},
	{"House Marinara", "Sauces", "Homemade marinara sauce", 40, 24, []Ingredient{
		{"Tomatoes", 3, "kg"}, {"Onions", 0.5, "kg"}, {"Olive Oil", 0.2, "l"},
	}},
}
