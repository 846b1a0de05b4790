package domain

// Category groups products in a tenant's catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tag is a free-form catalog label (e.g. "gluten-free").
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry of a tenant store.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
	// LeadTimeDays is how many days the bakery needs before the item can be
	// delivered. Nil means no declared lead time (next-day minimum applies).
	LeadTimeDays *int `json:"lead_time_days,omitempty"`
	Available    bool `json:"available"`
}
