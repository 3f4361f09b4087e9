package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. The image field holds the bare file name in
// the store; responses carry the full download path (see WithImagePath).
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Desc     string          `json:"desc"`
	Image    string          `json:"image"`
	LongDesc string          `json:"longDesc"`
}

// ImagePathPrefix is where product images are downloaded from. Static
// assets are mounted so that /images/products/<file> resolves.
const ImagePathPrefix = "/images/products/"

// WithImagePath returns a copy of the product whose image field is the
// full download path instead of the stored file name.
func (p Product) WithImagePath() Product {
	p.Image = ImagePathPrefix + p.Image
	return p
}

// CartProduct is the subset of product attributes embedded in cart
// responses. No longDesc, the cart page never shows it.
type CartProduct struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Desc  string          `json:"desc"`
	Image string          `json:"image"`
}

// CartView returns the cart-response projection of the product, image path
// included.
func (p Product) CartView() CartProduct {
	return CartProduct{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Desc:  p.Desc,
		Image: ImagePathPrefix + p.Image,
	}
}
