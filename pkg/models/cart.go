package models

// CartItem is a single line in a user's cart as stored: a product
// reference and a quantity, nothing else. Quantity is always >= 1.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartEntry is a cart line as returned by GET /cart/:userId, with the
// product attributes joined in.
type CartEntry struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// UpsertCartItemRequest is the optional body of PUT /cart/:userId/:productId.
// A nil Quantity means "add with quantity 1, or increment by 1 if present".
type UpsertCartItemRequest struct {
	Quantity *int `json:"quantity"`
}
