package discovery

import "github.com/anonto42/travel-discover/backend/internal/models"

func rating(v float64) *float64 { return &v }

// curatedEntries are hand-authored and never mutated; Catalog hands out clones.
var curatedEntries = map[string]models.DiscoveryResult{
	"paris": {
		Places: []models.PlaceItem{
			{Name: "Eiffel Tower", Description: "Iconic iron lattice tower and the symbol of Paris, offering stunning views of the city from multiple levels", Rating: rating(4.8)},
			{Name: "Louvre Museum", Description: "World's largest art museum with iconic works like the Mona Lisa and Venus de Milo. Home to over 38,000 artworks", Rating: rating(4.7)},
			{Name: "Notre-Dame Cathedral", Description: "Medieval Catholic cathedral and masterpiece of Gothic architecture. Famous for its rose windows and gargoyles", Rating: rating(4.6)},
			{Name: "Arc de Triomphe", Description: "Triumphal arch honoring military victories with views from the rooftop terrace over the city", Rating: rating(4.5)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "Le Jules Verne", Cuisine: "French Fine Dining - Michelin-starred restaurant in Eiffel Tower", Rating: rating(4.5)},
			{Name: "L'Ami Jean", Cuisine: "Traditional French - Cozy bistro with authentic French cuisine", Rating: rating(4.4)},
			{Name: "Bouchon du Palais Royal", Cuisine: "French Bistro - Classic Lyonnais cuisine in the heart of Paris", Rating: rating(4.6)},
		},
		Activities: []models.ActivityItem{
			{Name: "Seine River Cruise", Description: "Romantic boat ride along the Seine with stunning views of monuments and bridges"},
			{Name: "Montmartre Walking Tour", Description: "Explore the artistic heart of Paris with charming streets and the Basilica of Sacré-Cœur"},
			{Name: "Versailles Palace Tour", Description: "Visit the grand royal palace with opulent gardens and historical rooms"},
		},
		Foods: []models.FoodItem{
			{Name: "Croissants", Description: "Buttery, flaky pastries perfect for breakfast, best enjoyed with coffee"},
			{Name: "Escargots", Description: "Traditional French snails cooked in garlic butter sauce"},
			{Name: "French Macarons", Description: "Delicate almond meringue cookies with various flavors and fillings"},
		},
	},
	"tokyo": {
		Places: []models.PlaceItem{
			{Name: "Senso-ji Temple", Description: "Ancient Buddhist temple from 645 AD and Tokyo's oldest, featuring the iconic red lantern", Rating: rating(4.7)},
			{Name: "Tokyo Skytree", Description: "Tallest structure in Japan with observation decks offering 360-degree city views", Rating: rating(4.6)},
			{Name: "Meiji Shrine", Description: "Shinto shrine surrounded by peaceful forest, dedicated to the Meiji Emperor", Rating: rating(4.8)},
			{Name: "Imperial Palace", Description: "Residence of the Japanese Emperor with beautiful gardens and historic grounds", Rating: rating(4.4)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "Sukiyabashi Jiro", Cuisine: "Sushi - Legendary 3-Michelin-star sushi restaurant", Rating: rating(4.9)},
			{Name: "Ichiran Ramen", Cuisine: "Ramen - Famous chain with rich tonkotsu broth", Rating: rating(4.5)},
			{Name: "Tempura Kondo", Cuisine: "Tempura - Crispy battered seafood and vegetables by a master chef", Rating: rating(4.7)},
		},
		Activities: []models.ActivityItem{
			{Name: "Shibuya Crossing Experience", Description: "Witness the world's busiest pedestrian crossing from the Starbucks overlooking it"},
			{Name: "Tsukiji Fish Market Tour", Description: "Early morning visit to the famous fish market with tuna auctions and fresh seafood"},
			{Name: "Karaoke Night", Description: "Experience Japanese karaoke culture in a private booth with friends"},
		},
		Foods: []models.FoodItem{
			{Name: "Sushi", Description: "Fresh raw fish and seafood served on seasoned rice, a quintessential Japanese dish"},
			{Name: "Ramen", Description: "Rich noodle soup with various broths and authentic toppings"},
			{Name: "Okonomiyaki", Description: "Savory Japanese pancake with vegetables, meat, and special sauce"},
		},
	},
	"new york": {
		Places: []models.PlaceItem{
			{Name: "Statue of Liberty", Description: "Iconic symbol of freedom with accessible torch and crown for visitors", Rating: rating(4.7)},
			{Name: "Central Park", Description: "Massive urban park in Manhattan with lakes, meadows, and iconic landmarks", Rating: rating(4.8)},
			{Name: "Times Square", Description: "Bright lights and bustling entertainment district with Broadway theaters", Rating: rating(4.5)},
			{Name: "Empire State Building", Description: "Historic Art Deco skyscraper with observation decks on the 86th and 102nd floors", Rating: rating(4.6)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "Katz's Delicatessen", Cuisine: "Jewish Deli - Famous for pastrami on rye and mile-high sandwiches", Rating: rating(4.6)},
			{Name: "Peter Luger Steak House", Cuisine: "Steakhouse - Iconic steakhouse with dry-aged beef", Rating: rating(4.7)},
			{Name: "Joe's Pizza", Cuisine: "Pizzeria - Classic NYC pizza slices from multiple locations", Rating: rating(4.5)},
		},
		Activities: []models.ActivityItem{
			{Name: "Broadway Show", Description: "World-class theater performances at historic theaters"},
			{Name: "Brooklyn Bridge Walk", Description: "Scenic walk across the historic bridge with Manhattan skyline views"},
			{Name: "Museum of Natural History", Description: "World-renowned museum with dinosaur fossils and cultural exhibits"},
		},
		Foods: []models.FoodItem{
			{Name: "New York Pizza", Description: "Thin-crust pizza sold by the slice, the quintessential NYC street food"},
			{Name: "Hot Dogs", Description: "Classic street food from iconic vendors like Sabrett or Nathan's"},
			{Name: "Bagels with Lox", Description: "Cream cheese and smoked salmon on a toasted bagel"},
		},
	},
	"london": {
		Places: []models.PlaceItem{
			{Name: "Big Ben", Description: "Iconic clock tower and symbol of London, officially the Elizabeth Tower", Rating: rating(4.7)},
			{Name: "Tower of London", Description: "Historic castle home to the Crown Jewels with fascinating exhibits", Rating: rating(4.6)},
			{Name: "British Museum", Description: "World-famous museum with vast collections including the Rosetta Stone", Rating: rating(4.8)},
			{Name: "Westminster Abbey", Description: "Gothic abbey where royal coronations and weddings take place", Rating: rating(4.5)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "The Ledbury", Cuisine: "Modern European - 2-Michelin-star restaurant", Rating: rating(4.6)},
			{Name: "Dishoom", Cuisine: "Indian - Popular Bombay-style restaurant", Rating: rating(4.5)},
			{Name: "The Ivy", Cuisine: "British - Classic English restaurant in Covent Garden", Rating: rating(4.4)},
		},
		Activities: []models.ActivityItem{
			{Name: "Thames River Cruise", Description: "Sightseeing cruise along the River Thames past major landmarks"},
			{Name: "West End Theatre", Description: "Attend a world-class theatrical production in historic theaters"},
			{Name: "Notting Hill Walking Tour", Description: "Explore colorful houses and charming streets in the trendy neighborhood"},
		},
		Foods: []models.FoodItem{
			{Name: "Fish and Chips", Description: "Classic British fried fish with chips, best enjoyed with malt vinegar"},
			{Name: "Afternoon Tea", Description: "Traditional tea service with sandwiches, scones, and pastries"},
			{Name: "Sunday Roast", Description: "Roasted meat with Yorkshire pudding and gravy"},
		},
	},
	"dubai": {
		Places: []models.PlaceItem{
			{Name: "Burj Khalifa", Description: "World's tallest building with observation decks and fine dining", Rating: rating(4.8)},
			{Name: "Dubai Mall", Description: "Massive shopping and entertainment complex with over 1200 stores", Rating: rating(4.6)},
			{Name: "Palm Jumeirah", Description: "Artificial archipelago shaped like a palm tree with luxury properties", Rating: rating(4.7)},
			{Name: "Dubai Fountain", Description: "World's largest choreographed fountain with impressive water displays", Rating: rating(4.7)},
		},
		Restaurants: []models.RestaurantItem{
			{Name: "At.mosphere", Cuisine: "International Fine Dining - In Burj Khalifa with city views", Rating: rating(4.7)},
			{Name: "Pierchic", Cuisine: "Seafood - Fine dining on a pier over the Arabian Gulf", Rating: rating(4.6)},
			{Name: "Al Mallah", Cuisine: "Middle Eastern - Famous shawarma and kebab restaurant", Rating: rating(4.5)},
		},
		Activities: []models.ActivityItem{
			{Name: "Desert Safari", Description: "Thrilling dune bashing with camel rides and traditional entertainment"},
			{Name: "Dubai Fountain Show", Description: "Spectacular choreographed fountain display set to music"},
			{Name: "Ski Dubai", Description: "Indoor skiing in the desert with real snow"},
		},
		Foods: []models.FoodItem{
			{Name: "Shawarma", Description: "Middle Eastern wrap with meat, tahini, and vegetables"},
			{Name: "Arabic Mezze", Description: "Selection of small dishes including hummus, tabbouleh, and falafel"},
			{Name: "Camel Meat", Description: "Traditional Emirati delicacy with unique flavor"},
		},
	},
}
