package models

// PlaceItem is a landmark or point of interest
type PlaceItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
}

// RestaurantItem is a place to eat; Cuisine doubles as its description
type RestaurantItem struct {
	Name    string   `json:"name"`
	Cuisine string   `json:"cuisine"`
	Rating  *float64 `json:"rating,omitempty"`
}

// ActivityItem is something to do at the location
type ActivityItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
}

// FoodItem is a local dish
type FoodItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
}

// DiscoveryResult is the response body of a discovery request
type DiscoveryResult struct {
	Places      []PlaceItem      `json:"places"`
	Restaurants []RestaurantItem `json:"restaurants"`
	Activities  []ActivityItem   `json:"activities"`
	Foods       []FoodItem       `json:"foods"`
}

// ItemRef is a flattened view of one result item, carrying what a save needs
type ItemRef struct {
	Name        string    `json:"name"`
	Type        PlaceType `json:"type"`
	Description string    `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
}

// Len returns the number of items across all categories
func (r DiscoveryResult) Len() int {
	return len(r.Places) + len(r.Restaurants) + len(r.Activities) + len(r.Foods)
}

// Items flattens the four categories in display order.
func (r DiscoveryResult) Items() []ItemRef {
	items := make([]ItemRef, 0, r.Len())
	for _, p := range r.Places {
		items = append(items, ItemRef{Name: p.Name, Type: PlaceTypePlace, Description: p.Description, Rating: p.Rating})
	}
	for _, p := range r.Restaurants {
		items = append(items, ItemRef{Name: p.Name, Type: PlaceTypeRestaurant, Description: p.Cuisine, Rating: p.Rating})
	}
	for _, p := range r.Activities {
		items = append(items, ItemRef{Name: p.Name, Type: PlaceTypeActivity, Description: p.Description, Rating: p.Rating})
	}
	for _, p := range r.Foods {
		items = append(items, ItemRef{Name: p.Name, Type: PlaceTypeFood, Description: p.Description, Rating: p.Rating})
	}
	return items
}

// Clone returns a deep copy, so callers never share slices or rating
// pointers with the catalog.
func (r DiscoveryResult) Clone() DiscoveryResult {
	out := DiscoveryResult{
		Places:      make([]PlaceItem, len(r.Places)),
		Restaurants: make([]RestaurantItem, len(r.Restaurants)),
		Activities:  make([]ActivityItem, len(r.Activities)),
		Foods:       make([]FoodItem, len(r.Foods)),
	}
	for i, p := range r.Places {
		p.Rating = cloneRating(p.Rating)
		out.Places[i] = p
	}
	for i, p := range r.Restaurants {
		p.Rating = cloneRating(p.Rating)
		out.Restaurants[i] = p
	}
	for i, p := range r.Activities {
		p.Rating = cloneRating(p.Rating)
		out.Activities[i] = p
	}
	for i, p := range r.Foods {
		p.Rating = cloneRating(p.Rating)
		out.Foods[i] = p
	}
	return out
}

func cloneRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}

// DiscoverRequest defines the request body for an authenticated discovery
type DiscoverRequest struct {
	Location string `json:"location" validate:"required"`
}
