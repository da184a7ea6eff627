package services

import "zaykaa/models"

func ratingOf(v float64) *float64 { return &v }

// DefaultMenuItems returns the built-in catalog used when neither the remote
// source nor a local mirror is available. The slice is freshly allocated on
// every call so callers can mutate their copy.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "1", Name: "Samosa", Description: "Crispy pastry stuffed with spiced potatoes and peas",
			Price: 20, Image: "/images/samosa.jpg", Category: "Snacks",
			Rating: ratingOf(4.5), IsVeg: true, IsOffer: false,
		},
		{
			ID: "2", Name: "Paneer Tikka", Description: "Char-grilled cottage cheese in smoky tandoori marinade",
			Price: 180, Image: "/images/paneer-tikka.jpg", Category: "Starters",
			Rating: ratingOf(4.7), IsVeg: true, IsOffer: true,
		},
		{
			ID: "3", Name: "Chicken Biryani", Description: "Fragrant basmati rice layered with spiced chicken",
			Price: 240, Image: "/images/chicken-biryani.jpg", Category: "Main Course",
			Rating: ratingOf(4.8), IsVeg: false, IsOffer: false,
		},
		{
			ID: "4", Name: "Dal Makhani", Description: "Slow-cooked black lentils finished with butter and cream",
			Price: 160, Image: "/images/dal-makhani.jpg", Category: "Main Course",
			Rating: ratingOf(4.4), IsVeg: true, IsOffer: false,
		},
		{
			ID: "5", Name: "Butter Naan", Description: "Soft tandoor-baked flatbread brushed with butter",
			Price: 35, Image: "/images/butter-naan.jpg", Category: "Breads",
			Rating: ratingOf(4.3), IsVeg: true, IsOffer: false,
		},
		{
			ID: "6", Name: "Masala Chai", Description: "Strong tea simmered with milk and whole spices",
			Price: 25, Image: "/images/masala-chai.jpg", Category: "Beverages",
			Rating: ratingOf(4.6), IsVeg: true, IsOffer: false, IsBeverage: true,
		},
		{
			ID: "7", Name: "Mango Lassi", Description: "Thick yogurt smoothie blended with Alphonso mango",
			Price: 60, Image: "/images/mango-lassi.jpg", Category: "Beverages",
			Rating: ratingOf(4.5), IsVeg: true, IsOffer: true, IsBeverage: true,
		},
		{
			ID: "8", Name: "Gulab Jamun", Description: "Fried milk dumplings soaked in cardamom syrup",
			Price: 50, Image: "/images/gulab-jamun.jpg", Category: "Desserts",
			Rating: ratingOf(4.7), IsVeg: true, IsOffer: false,
		},
		{
			ID: "9", Name: "Sprout Salad", Description: "Mixed sprouts with cucumber, tomato and lemon",
			Price: 90, Image: "/images/sprout-salad.jpg", Category: "Healthy",
			Rating: ratingOf(4.2), IsVeg: true, IsOffer: false, IsHealthFreak: true,
		},
		{
			ID: "10", Name: "Chicken 65", Description: "Fiery deep-fried chicken tossed with curry leaves",
			Price: 200, Image: "/images/chicken-65.jpg", Category: "Starters",
			Rating: ratingOf(4.6), IsVeg: false, IsOffer: true,
		},
	}
}
