package domain

import "time"

type Cuisine struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Restaurant struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	CuisineID   int          `json:"cuisine_id"`
	Address     string       `json:"address"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	LogoURL     string       `json:"logo_url"`
	CreatedAt   time.Time    `json:"created_at"`
	Features    []Feature    `json:"features,omitempty"`
	SocialLinks []SocialLink `json:"social_links,omitempty"`
}

type Feature struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Enabled      bool   `json:"enabled"`
}

type SocialLink struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Platform     string `json:"platform"`
	URL          string `json:"url"`
}

type DishCategory struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	SortOrder    int    `json:"sort_order"`
}

type Dish struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	CategoryID   int       `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantTable struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	TableNumber  string    `json:"table_number"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
