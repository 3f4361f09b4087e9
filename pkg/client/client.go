// Package client is a Go caller for the boutique REST API, mirroring what
// the browser front-end does: thin wrappers over the HTTP routes plus a
// stateful cart that re-fetches itself after every mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mlefevre/boutique-api/pkg/global"
	"github.com/mlefevre/boutique-api/pkg/models"
)

// Client holds the connection settings shared by all calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// do issues a JSON request. Error responses carrying a {status, message}
// body come back as *global.HTTPError so callers can inspect the status;
// anything else is a plain error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var httpErr global.HTTPError
		if strings.Contains(resp.Header.Get("Content-Type"), "application/json") &&
			json.NewDecoder(resp.Body).Decode(&httpErr) == nil && httpErr.Status != 0 {
			return &httpErr
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchProducts retrieves the whole catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// FetchProduct retrieves a single catalog product by id.
func (c *Client) FetchProduct(ctx context.Context, productID string) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+productID, nil, &product); err != nil {
		return models.Product{}, fmt.Errorf("fetch product %s: %w", productID, err)
	}
	return product, nil
}

// FetchOrders retrieves all submitted orders.
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// SubmitOrder posts a checkout request and returns the created order.
func (c *Client) SubmitOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
