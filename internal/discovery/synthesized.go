package discovery

import "github.com/anonto42/travel-discover/backend/internal/models"

// synthesize builds the generic result for a location the catalog has no
// entry for. Ratings are fixed constants so the same label always yields the
// same result.
func synthesize(label string) models.DiscoveryResult {
	return models.DiscoveryResult{
		Places: []models.PlaceItem{
			{Name: label + " City Center", Description: "Historic downtown area with shops, restaurants, and cultural landmarks", Rating: rating(4.3)},
			{Name: label + " Museum", Description: "Local history and culture exhibits showcasing regional heritage", Rating: rating(4.2)},
			{Name: label + " Park", Description: "Beautiful green space perfect for relaxation and outdoor activities", Rating: rating(4.4)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "The " + label + " Grill", Cuisine: "Local Cuisine - Authentic traditional regional dishes", Rating: rating(4.3)},
			{Name: label + " Cafe", Cuisine: "International - Diverse menu with local and global flavors", Rating: rating(4.2)},
		},
		Activities: []models.ActivityItem{
			{Name: label + " Walking Tour", Description: "Explore the main attractions and hidden gems on foot with local guides", Rating: rating(4.5)},
			{Name: label + " Market Visit", Description: "Experience authentic local shopping with traditional goods and crafts", Rating: rating(4.4)},
		},
		Foods: []models.FoodItem{
			{Name: label + " Specialty", Description: "Traditional dish unique to this region with authentic preparation", Rating: rating(4.6)},
			{Name: label + " Street Food", Description: "Popular local street food options offering authentic flavors", Rating: rating(4.3)},
		},
	}
}
