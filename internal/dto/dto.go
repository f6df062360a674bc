package dto

import "encoding/json"

type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CheckoutEvent is the webhook body the Yever platform posts on every
// checkout lifecycle change.
type CheckoutEvent struct {
	Token       string          `json:"token"`
	Reference   string          `json:"reference"`
	Customer    Customer        `json:"customer"`
	Products    json.RawMessage `json:"products"`
	PriceTotal  float64         `json:"price_total"`
	CheckoutURL string          `json:"checkout_url"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	LastStep    string          `json:"last_step"`
	OrderStatus string          `json:"order_status"`
}

type GeneratePixRequest struct {
	CartID      uint   `json:"cart_id"`
	Description string `json:"description"`
}

type GeneratePixResponse struct {
	PixCode       string `json:"pix_code"`
	PixURL        string `json:"pix_url"`
	TransactionID uint   `json:"transaction_id"`
}
