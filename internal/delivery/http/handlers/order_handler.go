package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bundl-protocol/orderbook-service/internal/delivery/http/dto/order/response"
	"github.com/bundl-protocol/orderbook-service/internal/domain"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
	usecase "github.com/bundl-protocol/orderbook-service/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// SubmitOrder handles POST /orders
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var raw orderdto.RawSubmission
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid order data",
			"details": gin.H{"body": err.Error()},
		})
		return
	}

	order, err := h.uc.SubmitOrder(&raw)
	if err != nil {
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid order data",
				"details": validationErrs,
			})
			return
		}
		if errors.Is(err, domain.ErrDuplicateOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order submitted successfully",
		"order":   response.FromDomainOrder(order),
	})
}

// GetOrderByHash handles GET /orders/:hash
func (h *OrderHandler) GetOrderByHash(c *gin.Context) {
	order, err := h.uc.GetOrderByHash(c.Param("hash"))
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainOrder(order))
}

// GetOrderStatus handles GET /orders/:hash/status
func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	order, err := h.uc.GetOrderByHash(c.Param("hash"))
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainOrderStatus(order))
}

// CancelOrder handles POST /orders/:hash/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.uc.CancelOrder(c.Param("hash"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled successfully",
		"order":   response.FromDomainOrder(order),
	})
}

// GetOrdersByMaker handles GET /orders/maker/:address
func (h *OrderHandler) GetOrdersByMaker(c *gin.Context) {
	page, limit := paginationParams(c)
	result, err := h.uc.GetOrdersByMaker(c.Param("address"), c.Query("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, response.FromPage(result))
}

// GetActiveOrders handles GET /orders/active
func (h *OrderHandler) GetActiveOrders(c *gin.Context) {
	page, limit := paginationParams(c)
	result, err := h.uc.GetActiveOrders(
		c.Query("maker"),
		c.Query("makerAsset"),
		c.Query("takerAsset"),
		page, limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, response.FromPage(result))
}

// GetOrderbook handles GET /orderbook
func (h *OrderHandler) GetOrderbook(c *gin.Context) {
	orderbook, err := h.uc.GetOrderbook(c.Query("makerAsset"), c.Query("takerAsset"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingParameter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "makerAsset and takerAsset parameters required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build orderbook"})
		return
	}

	c.JSON(http.StatusOK, response.FromDomainOrderbook(orderbook))
}

func (h *OrderHandler) renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}
