package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paiement holds the credit card fields exactly as they appear on the
// wire. Nothing is ever charged; this is demo data.
type Paiement struct {
	NomCarteCredit string `json:"nomCarteCredit"`
	NoCarteCredit  string `json:"noCarteCredit"`
	ExpCarteCredit string `json:"expCarteCredit"`
}

// Adresse is a shipping address.
type Adresse struct {
	Nom        string `json:"nom"`
	Adresse    string `json:"adresse"`
	Ville      string `json:"ville"`
	Province   string `json:"province"`
	CodePostal string `json:"codePostal"`
}

// ShippingModes are the accepted values for the modeExp field.
var ShippingModes = []string{"postescanada", "purolator", "fedex"}

func IsValidShippingMode(mode string) bool {
	for _, m := range ShippingModes {
		if m == mode {
			return true
		}
	}
	return false
}

// OrderItem is a cart line frozen into an order. Price is the catalog
// price captured at submission time; later catalog edits never touch it.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is an immutable record of a submitted cart. Ids are assigned by
// the order store and strictly increase.
type Order struct {
	ID            int         `json:"id"`
	UserID        string      `json:"userId"`
	Cart          []OrderItem `json:"cart"`
	Paiement      Paiement    `json:"paiement"`
	ModeExp       string      `json:"modeExp"`
	Adresse       Adresse     `json:"adresse"`
	OrderDateTime time.Time   `json:"orderDateTime"`
}

// CreateOrderRequest is the body of POST /orders. Paiement and Adresse are
// pointers so a missing block can be told apart from an empty one.
type CreateOrderRequest struct {
	UserID   string    `json:"userId"`
	Paiement *Paiement `json:"paiement"`
	ModeExp  string    `json:"modeExp"`
	Adresse  *Adresse  `json:"adresse"`
}
