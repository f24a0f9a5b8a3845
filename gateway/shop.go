package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/example/astroshop/pkg/assistant"
	"github.com/example/astroshop/pkg/auth"
	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/checkout"
	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// cartFor builds the per-session cart store. A missing session header
// mints a fresh session, echoed back to the client.
func (g *Gateway) cartFor(c *gin.Context) *store.CartStore {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return store.NewCartStore(g.deps.Storage, g.logger, sessionID)
}

func (g *Gateway) listProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if raw, ok := c.GetQuery("category"); ok {
		category := models.Category(raw)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		products, err := g.deps.Catalog.ProductsByCategory(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
		return
	}

	products, err := g.deps.Catalog.Products(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (g *Gateway) getProduct(c *gin.Context) {
	product, err := g.deps.Catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (g *Gateway) searchProducts(c *gin.Context) {
	products, err := g.deps.Catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

type cartView struct {
	Items []models.CartLine `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

func (g *Gateway) cartViewFor(c *gin.Context, cart *store.CartStore) cartView {
	ctx := c.Request.Context()
	return cartView{
		Items: cart.Items(ctx),
		Count: cart.Count(ctx),
		Total: cart.Total(ctx),
	}
}

func (g *Gateway) getCart(c *gin.Context) {
	cart := g.cartFor(c)
	c.JSON(http.StatusOK, g.cartViewFor(c, cart))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (g *Gateway) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := g.deps.Catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart := g.cartFor(c)
	if err := cart.Add(c.Request.Context(), product, req.Quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s has been added to your cart.", product.Name),
		"cart":    g.cartViewFor(c, cart),
	})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (g *Gateway) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := g.cartFor(c)
	cart.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
	c.JSON(http.StatusOK, g.cartViewFor(c, cart))
}

func (g *Gateway) removeCartItem(c *gin.Context) {
	cart := g.cartFor(c)
	cart.Remove(c.Request.Context(), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"message": "The item has been removed from your cart.",
		"cart":    g.cartViewFor(c, cart),
	})
}

func (g *Gateway) clearCart(c *gin.Context) {
	cart := g.cartFor(c)
	cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, g.cartViewFor(c, cart))
}

func (g *Gateway) checkout(c *gin.Context) {
	var req checkout.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := g.cartFor(c)
	order, err := g.deps.Checkout.Purchase(c.Request.Context(), cart, req)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout form", "fields": verr.Fields})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "We couldn't process your payment. Please check your details and try again.",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      fmt.Sprintf("Your order %s has been placed. Thank you for shopping with us.", order.OrderNumber),
		"order_number": order.OrderNumber,
		"order":        order,
	})
}

type chatRequest struct {
	Query string `json:"query" binding:"required"`
}

func (g *Gateway) assistantChat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := g.deps.Assistant.Chat(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "The assistant is unavailable right now. Please try again later.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

type recommendationsRequest struct {
	Birthdate  string `json:"birthdate" binding:"required"`
	ZodiacSign string `json:"zodiac_sign"`
}

func (g *Gateway) assistantRecommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := g.deps.Assistant.Recommend(c.Request.Context(), req.Birthdate, req.ZodiacSign)
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidBirthdate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "birthdate must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Recommendations are unavailable right now. Please try again later.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (g *Gateway) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := g.deps.Auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (g *Gateway) adminLogout(c *gin.Context) {
	g.deps.Auth.Logout(c.Request.Context(), c.GetHeader("X-Admin-Token"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) recordSignIn(c *gin.Context) {
	var account models.UserAccount
	if err := c.BindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if account.UID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
		return
	}

	g.deps.Auth.RecordSignIn(c.Request.Context(), account)
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) currentUser(c *gin.Context) {
	account, err := g.deps.Auth.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current user"})
		return
	}
	c.JSON(http.StatusOK, account)
}
