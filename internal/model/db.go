package model

import "time"

// AbandonedCart is one checkout session the customer walked away from.
// Reference is the platform's stable id for the session; a later webhook
// for the same reference replaces the whole row.
type AbandonedCart struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Reference     string  `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Products      string  `json:"products"` // serialized line items, never parsed here
	PriceTotal    float64 `json:"price_total"`
	CheckoutURL   string  `json:"checkout_url"`
	// timestamps come from the platform and are stored verbatim
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	LastStep  string `gorm:"size:64" json:"last_step"`
	Status    string `gorm:"size:32;index" json:"status"` // abandoned, canceled, ...
}

// PixTransaction records one payment-code generation. Rows are append-only;
// nothing in this service ever moves Status past "pending".
type PixTransaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderReference string    `gorm:"size:64;index" json:"order_reference"`
	CustomerEmail  string    `json:"customer_email"`
	Value          float64   `json:"value"`
	Description    string    `json:"description"`
	PixCode        string    `json:"pix_code"`
	PixURL         *string   `json:"pix_url"`
	CreatedAt      time.Time `json:"created_at"`
	Status         string    `gorm:"size:16;default:pending" json:"status"`
}
