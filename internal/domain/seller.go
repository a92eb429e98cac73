package domain

import "github.com/shopspring/decimal"

// SellerFoodItem is one listing proposed in a seller application.
type SellerFoodItem struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Quantity      int             `json:"quantity"`
}

// SellerApplication is the payload of the multi-step onboarding form.
// The details step and the items step validate independently.
type SellerApplication struct {
	BusinessName string           `json:"business_name"`
	OwnerName    string           `json:"owner_name"`
	Email        string           `json:"email"`
	PhoneNumber  string           `json:"phone_number"`
	Location     string           `json:"location"`
	BusinessType string           `json:"business_type"`
	Description  string           `json:"description"`
	FoodItems    []SellerFoodItem `json:"food_items"`
}

type SellerApplicationResponse struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
