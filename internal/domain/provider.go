package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories a provider can register under. The listing UI renders these
// verbatim, so the values stay in Hungarian.
var Categories = []string{
	"Pillás",
	"Körmös",
	"Női fodrász",
	"Sminkes",
	"Szájfeltöltés",
	"Férfi fodrász",
	"Lézeres szőrtelenítés",
	"Kozmetikus",
	"Botox",
	"Sminktetoválás",
	"Gyanta",
	"Szemöldök szempilla styling",
	"Hajhosszabítás",
	"Pedikür",
	"Fitness/mozgás",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MediaItem is identified by its URL within its list. Two items in the same
// list can never share a URL.
type MediaItem struct {
	URL    string `json:"url" bson:"url"`
	IsMain bool   `json:"is_main" bson:"is_main"`
}

type ProviderMedia struct {
	Images []MediaItem `json:"images" bson:"images"`
	Videos []MediaItem `json:"videos" bson:"videos"`
}

type Provider struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Category    string             `json:"category" bson:"category"`
	MinPrice    int                `json:"min_price" bson:"min_price"`
	MaxPrice    int                `json:"max_price" bson:"max_price"`
	Country     string             `json:"country" bson:"country"`
	City        string             `json:"city" bson:"city"`
	PostalCode  string             `json:"postal_code" bson:"postal_code"`
	Street      string             `json:"street" bson:"street"`
	HouseNumber string             `json:"house_number" bson:"house_number"`
	PhoneNumber string             `json:"phone_number" bson:"phone_number"`
	Instagram   *string            `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Facebook    *string            `json:"facebook,omitempty" bson:"facebook,omitempty"`
	TikTok      *string            `json:"tiktok,omitempty" bson:"tiktok,omitempty"`
	Media       ProviderMedia      `json:"media" bson:"media"`
	Approved    bool               `json:"approved" bson:"approved"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type RegisterProviderInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Category    string  `json:"category"`
	MinPrice    int     `json:"min_price"`
	MaxPrice    int     `json:"max_price"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postal_code"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"house_number"`
	PhoneNumber string  `json:"phone_number"`
	Instagram   *string `json:"instagram,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	TikTok      *string `json:"tiktok,omitempty"`
}

// UpdateProviderInput patches profile fields only. Media and the approved
// flag have their own operations and never pass through here.
type UpdateProviderInput struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Category    *string `json:"category,omitempty"`
	MinPrice    *int    `json:"min_price,omitempty"`
	MaxPrice    *int    `json:"max_price,omitempty"`
	Country     *string `json:"country,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	Street      *string `json:"street,omitempty"`
	HouseNumber *string `json:"house_number,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	TikTok      *string `json:"tiktok,omitempty"`
}
