package gateway

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/store"
	"github.com/gin-gonic/gin"
)

func (g *Gateway) listOrders(c *gin.Context) {
	orders := g.deps.Orders.Orders(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (g *Gateway) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := g.deps.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, store.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	if g.deps.Audit != nil {
		go g.deps.Audit.StatusChanged(context.Background(), order)
	}
	c.JSON(http.StatusOK, order)
}

func (g *Gateway) listArchivedOrders(c *gin.Context) {
	if g.deps.Archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "order archive not configured"})
		return
	}

	limit := 50
	if raw, ok := c.GetQuery("limit"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	orders, err := g.deps.Archive.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list archived orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

type stockView struct {
	models.StockRecord
	IsLow bool `json:"is_low"`
	IsOut bool `json:"is_out"`
}

func (g *Gateway) listStock(c *gin.Context) {
	records := g.deps.Stock.Items(c.Request.Context())
	views := make([]stockView, len(records))
	for i, r := range records {
		views[i] = stockView{StockRecord: r, IsLow: r.IsLow(), IsOut: r.IsOut()}
	}
	c.JSON(http.StatusOK, gin.H{"stock": views, "total": len(views)})
}

type updateStockRequest struct {
	Quantity          int  `json:"quantity"`
	LowStockThreshold *int `json:"low_stock_threshold"`
}

func (g *Gateway) updateStock(c *gin.Context) {
	var req updateStockRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := g.deps.Stock.Update(c.Request.Context(), c.Param("productId"), req.Quantity, req.LowStockThreshold)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update stock"})
		return
	}

	if g.deps.Audit != nil {
		go g.deps.Audit.StockUpdated(context.Background(), record)
	}
	c.JSON(http.StatusOK, stockView{StockRecord: record, IsLow: record.IsLow(), IsOut: record.IsOut()})
}

func (g *Gateway) auditEntries(c *gin.Context) {
	if g.deps.Audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit trail not configured"})
		return
	}

	entries, err := g.deps.Audit.Entries(c.Request.Context(), c.Param("entityId"), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}
