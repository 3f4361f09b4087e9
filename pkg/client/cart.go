package client

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mlefevre/boutique-api/pkg/models"
)

// Cart is the client-side view of one user's cart. The flags mirror the
// front-end view-state: Loading while a request is in flight, ItemsLoaded
// once the first fetch succeeded, LoadError when a fetch failed. Every
// mutation re-fetches the whole cart from the backend instead of patching
// Items locally, so the view always converges on the server state.
//
// A Cart is meant to be driven from a single goroutine, like the reactive
// object it mirrors.
type Cart struct {
	UserID string

	Loading     bool
	ItemsLoaded bool
	LoadError   bool
	Items       []models.CartEntry

	client             *Client
	initialLoadInvoked bool
}

// NewCart builds the cart view for a user. No request is made until
// InitialFetch or FetchCart is called.
func (c *Client) NewCart(userID string) *Cart {
	return &Cart{UserID: userID, client: c}
}

// InitialFetch loads the cart exactly once; later calls are no-ops. More
// than one view component may trigger it on mount.
func (cart *Cart) InitialFetch(ctx context.Context) error {
	if cart.initialLoadInvoked {
		return nil
	}
	cart.initialLoadInvoked = true
	return cart.FetchCart(ctx)
}

// FetchCart reloads Items from the backend and settles the view flags.
func (cart *Cart) FetchCart(ctx context.Context) error {
	cart.Loading = true

	var items []models.CartEntry
	if err := cart.client.do(ctx, http.MethodGet, "/cart/"+cart.UserID, nil, &items); err != nil {
		cart.LoadError = true
		return err
	}

	cart.Items = items
	cart.ItemsLoaded = true
	cart.Loading = false
	cart.LoadError = false
	return nil
}

// AddToCart adds one unit of the product. The backend increments the
// quantity if the product is already carted.
func (cart *Cart) AddToCart(ctx context.Context, productID string) error {
	cart.Loading = true

	if err := cart.client.do(ctx, http.MethodPut, "/cart/"+cart.UserID+"/"+productID, struct{}{}, nil); err != nil {
		return err
	}
	return cart.FetchCart(ctx)
}

// ChangeQuantity sets the carted quantity of the product to newQuantity.
// A 4xx answer comes back as *global.HTTPError with the backend message,
// which is what the front-end surfaces to the user.
func (cart *Cart) ChangeQuantity(ctx context.Context, productID string, newQuantity int) error {
	cart.Loading = true

	req := models.UpsertCartItemRequest{Quantity: &newQuantity}
	if err := cart.client.do(ctx, http.MethodPut, "/cart/"+cart.UserID+"/"+productID, req, nil); err != nil {
		return err
	}
	return cart.FetchCart(ctx)
}

// RemoveFromCart removes the product from the cart. Removing a product
// that is not carted has no effect.
func (cart *Cart) RemoveFromCart(ctx context.Context, productID string) error {
	cart.Loading = true

	if err := cart.client.do(ctx, http.MethodDelete, "/cart/"+cart.UserID+"/"+productID, nil, nil); err != nil {
		return err
	}
	return cart.FetchCart(ctx)
}

// Clear deletes the whole cart on the backend.
func (cart *Cart) Clear(ctx context.Context) error {
	cart.Loading = true

	if err := cart.client.do(ctx, http.MethodDelete, "/cart/"+cart.UserID, nil, nil); err != nil {
		return err
	}
	return cart.FetchCart(ctx)
}

// CalculateTotal returns the price total of the loaded items.
func (cart *Cart) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CalculateTotalItems returns the number of articles in the cart, counting
// quantities.
func (cart *Cart) CalculateTotalItems() int {
	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	return total
}
