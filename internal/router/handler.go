package router

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mlefevre/boutique-api/pkg/global"
	"github.com/mlefevre/boutique-api/pkg/models"
	"github.com/mlefevre/boutique-api/pkg/store"
)

// Handler holds the injected stores. One instance serves all routes.
type Handler struct {
	catalog *store.Catalog
	carts   *store.Carts
	orders  *store.Orders
}

// fail records the error for the ErrorHandler middleware and stops the
// handler. Callers must return immediately after.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

func (h *Handler) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalog.FindByID(id)
	if err != nil {
		fail(c, global.NotFound(fmt.Sprintf("product %s not found", id)))
		return
	}

	c.JSON(http.StatusOK, product.WithImagePath())
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		fail(c, global.BadRequest("invalid request body"))
		return
	}

	if product.ID == "" {
		fail(c, global.BadRequest("the id field is required"))
		return
	}

	if err := h.catalog.Add(product.ID, product); err != nil {
		// The wire contract answers duplicates with 400, not 409.
		fail(c, global.BadRequest(fmt.Sprintf("a product with id %s already exists", product.ID)))
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) EditProductByID(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.catalog.FindByID(id); err != nil {
		fail(c, global.NotFound(fmt.Sprintf("product %s not found", id)))
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		fail(c, global.BadRequest("invalid request body"))
		return
	}

	if product.ID != id {
		fail(c, global.BadRequest(fmt.Sprintf("the path specifies id %s but the provided product has id %s", id, product.ID)))
		return
	}

	if err := h.catalog.Modify(product); err != nil {
		fail(c, global.NotFound(fmt.Sprintf("product %s not found", id)))
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) DeleteProductByID(c *gin.Context) {
	// Deleting an absent id is a no-op, the route is idempotent.
	h.catalog.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) GetCart(c *gin.Context) {
	userID := c.Param("userId")

	items := h.carts.Items(userID)
	entries := make([]models.CartEntry, 0, len(items))
	for _, item := range items {
		product, err := h.catalog.FindByID(item.ProductID)
		if err != nil {
			// Product removed from the catalog after it was carted.
			continue
		}
		entries = append(entries, models.CartEntry{
			Product:  product.CartView(),
			Quantity: item.Quantity,
		})
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) UpsertCartItem(c *gin.Context) {
	userID := c.Param("userId")
	productID := c.Param("productId")

	if userID == "" {
		fail(c, global.BadRequest("the userId parameter must be specified"))
		return
	}
	if productID == "" {
		fail(c, global.BadRequest("the productId parameter must be specified"))
		return
	}

	// The body is optional: no body at all means "quantity 1, or increment".
	var req models.UpsertCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(c, global.BadRequest("invalid request body"))
		return
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		fail(c, global.BadRequest("the quantity field must be at least 1"))
		return
	}

	if _, err := h.catalog.FindByID(productID); err != nil {
		fail(c, global.NotFound(fmt.Sprintf("product %s not found", productID)))
		return
	}

	item := h.carts.UpsertItem(userID, productID, req.Quantity)
	c.JSON(http.StatusOK, item)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	// Removing an absent item or from an absent cart is a no-op.
	h.carts.RemoveItem(c.Param("userId"), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.carts.Clear(c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.List())
}

// SubmitOrder turns a user's cart into an order: validate fail-fast,
// snapshot the current catalog prices, append the order, clear the cart.
func (h *Handler) SubmitOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, global.BadRequest("invalid request body"))
		return
	}

	if req.UserID == "" {
		fail(c, global.BadRequest("the userId field is required"))
		return
	}

	items := h.carts.Items(req.UserID)
	if len(items) == 0 {
		fail(c, global.BadRequest(fmt.Sprintf("the cart for user %s is empty", req.UserID)))
		return
	}

	if err := validateOrderFields(&req); err != nil {
		fail(c, err)
		return
	}

	orderCart := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := h.catalog.FindByID(item.ProductID)
		if err != nil {
			fail(c, fmt.Errorf("carted product %s is missing from the catalog", item.ProductID))
			return
		}
		orderCart = append(orderCart, models.OrderItem{
			ProductID: item.ProductID,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	order := h.orders.Append(models.Order{
		UserID:   req.UserID,
		Cart:     orderCart,
		Paiement: *req.Paiement,
		ModeExp:  req.ModeExp,
		Adresse:  *req.Adresse,
	})
	h.carts.Clear(req.UserID)

	c.JSON(http.StatusOK, order)
}

// validateOrderFields checks the payment, shipping and address blocks in
// order. The first violation wins.
func validateOrderFields(req *models.CreateOrderRequest) *global.HTTPError {
	if req.Paiement == nil {
		return global.BadRequest("the paiement field is required")
	}
	if req.Paiement.NomCarteCredit == "" {
		return global.BadRequest("the paiement.nomCarteCredit field is required")
	}
	if req.Paiement.NoCarteCredit == "" {
		return global.BadRequest("the paiement.noCarteCredit field is required")
	}
	if req.Paiement.ExpCarteCredit == "" {
		return global.BadRequest("the paiement.expCarteCredit field is required")
	}

	if req.ModeExp == "" {
		return global.BadRequest("the modeExp field is required")
	}
	if !models.IsValidShippingMode(req.ModeExp) {
		return global.BadRequest("the modeExp field must be one of: " + strings.Join(models.ShippingModes, ", "))
	}

	if req.Adresse == nil {
		return global.BadRequest("the adresse field is required")
	}
	if req.Adresse.Nom == "" {
		return global.BadRequest("the adresse.nom field is required")
	}
	if req.Adresse.Adresse == "" {
		return global.BadRequest("the adresse.adresse field is required")
	}
	if req.Adresse.Ville == "" {
		return global.BadRequest("the adresse.ville field is required")
	}
	if req.Adresse.Province == "" {
		return global.BadRequest("the adresse.province field is required")
	}
	if req.Adresse.CodePostal == "" {
		return global.BadRequest("the adresse.codePostal field is required")
	}

	return nil
}
