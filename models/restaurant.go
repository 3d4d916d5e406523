package models

// RestaurantDetails identifies the restaurant on receipts, documents and
// share messages. Address may span multiple lines separated by "\n".
type RestaurantDetails struct {
	Name    string
	Address string
	Phone   string
	Gstin   string
}

// DefaultRestaurant returns the built-in restaurant identity.
func DefaultRestaurant() RestaurantDetails {
	return RestaurantDetails{
		Name:    "La Manila Kanishka",
		Address: "Ranka Rd, near Banjhakri\nWaterfall, Lower, Luing\nGangtok, Sikkim 737103",
		Phone:   "9907975680",
		Gstin:   "11AALFL9987C1Z1",
	}
}

// DefaultCategories returns the built-in category list.
func DefaultCategories() []string {
	return []string{
		"Appetizers",
		"Tandoori Breads & More",
		"Main Course (Veg)",
		"Main Course (Non-Veg)",
		"Rice & Biryani",
		"Desserts",
		"Beverages",
	}
}

// DefaultStaffList returns the built-in staff roster.
func DefaultStaffList() []string {
	return []string{
		"Amit Kumar",
		"Priya Sharma",
		"Rahul Verma",
		"Sunita Singh",
		"Vikram Rathore",
	}
}

// DefaultMenuItems returns the built-in catalog used when no menu has been
// persisted yet.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		// Appetizers
		{ID: 1, Name: "Vegetable Samosa", Description: "Crispy pastry filled with spiced potatoes and peas.", Price: 150, Category: "Appetizers", IsVeg: true},
		{ID: 2, Name: "Paneer Tikka", Description: "Cubes of cottage cheese marinated in spices and grilled in a tandoor.", Price: 250, Category: "Appetizers", IsVeg: true},
		{ID: 3, Name: "Chicken 65", Description: "Spicy, deep-fried chicken dish originating from Chennai, India.", Price: 300, Category: "Appetizers", IsVeg: false},
		{ID: 4, Name: "Hara Bhara Kebab", Description: "A vegetarian kebab made from spinach, peas, and potatoes.", Price: 220, Category: "Appetizers", IsVeg: true},

		// Tandoori
		{ID: 10, Name: "Tandoori Roti", Description: "Whole wheat bread baked in a clay oven.", Price: 40, Category: "Tandoori Breads & More", IsVeg: true},
		{ID: 11, Name: "Butter Naan", Description: "Soft, leavened flatbread with butter.", Price: 60, Category: "Tandoori Breads & More", IsVeg: true},
		{ID: 12, Name: "Garlic Naan", Description: "Naan bread flavored with garlic and herbs.", Price: 70, Category: "Tandoori Breads & More", IsVeg: true},
		{ID: 13, Name: "Laccha Paratha", Description: "Layered whole wheat bread.", Price: 65, Category: "Tandoori Breads & More", IsVeg: true},

		// Main Course (Veg)
		{ID: 20, Name: "Paneer Butter Masala", Description: "Cottage cheese in a rich, creamy tomato gravy.", Price: 350, Category: "Main Course (Veg)", IsVeg: true},
		{ID: 21, Name: "Dal Makhani", Description: "Black lentils and kidney beans cooked in a buttery, creamy sauce.", Price: 300, Category: "Main Course (Veg)", IsVeg: true},
		{ID: 22, Name: "Malai Kofta", Description: "Cottage cheese dumplings in a creamy cashew gravy.", Price: 375, Category: "Main Course (Veg)", IsVeg: true},
		{ID: 23, Name: "Aloo Gobi", Description: "A simple yet flavorful dish of potatoes and cauliflower.", Price: 280, Category: "Main Course (Veg)", IsVeg: true},

		// Main Course (Non-Veg)
		{ID: 30, Name: "Butter Chicken", Description: "Grilled chicken in a spiced tomato, butter, and cream sauce.", Price: 450, Category: "Main Course (Non-Veg)", IsVeg: false},
		{ID: 31, Name: "Rogan Josh", Description: "Aromatic lamb curry with a blend of Kashmiri spices.", Price: 550, Category: "Main Course (Non-Veg)", IsVeg: false},
		{ID: 32, Name: "Goan Fish Curry", Description: "Tangy and spicy fish curry with coconut milk.", Price: 500, Category: "Main Course (Non-Veg)", IsVeg: false},
		{ID: 33, Name: "Chicken Tikka Masala", Description: "Roasted marinated chicken chunks in a spiced curry sauce.", Price: 475, Category: "Main Course (Non-Veg)", IsVeg: false},

		// Rice & Biryani
		{ID: 40, Name: "Steamed Rice", Description: "Plain boiled basmati rice.", Price: 150, Category: "Rice & Biryani", IsVeg: true},
		{ID: 41, Name: "Vegetable Biryani", Description: "Aromatic rice dish with mixed vegetables and spices.", Price: 320, Category: "Rice & Biryani", IsVeg: true},
		{ID: 42, Name: "Chicken Dum Biryani", Description: "Slow-cooked chicken and basmati rice with spices.", Price: 420, Category: "Rice & Biryani", IsVeg: false},

		// Desserts
		{ID: 50, Name: "Gulab Jamun", Description: "Soft, milk-solid balls soaked in rose-flavored sugar syrup.", Price: 120, Category: "Desserts", IsVeg: true},
		{ID: 51, Name: "Ras Malai", Description: "Cottage cheese dumplings soaked in sweetened, thickened milk.", Price: 150, Category: "Desserts", IsVeg: true},

		// Beverages
		{ID: 60, Name: "Masala Chai", Description: "Indian spiced tea.", Price: 80, Category: "Beverages", IsVeg: true},
		{ID: 61, Name: "Mango Lassi", Description: "A refreshing yogurt-based mango shake.", Price: 140, Category: "Beverages", IsVeg: true},
	}
}
