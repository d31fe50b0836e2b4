package http

import (
	"github.com/bundl-protocol/orderbook-service/internal/delivery/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the order routes. The static /orders/active and
// /orders/maker segments must coexist with the /orders/:hash parameter, so
// they are registered on the same group and gin resolves static first.
func NewRouter(orderHandler *handlers.OrderHandler) *gin.Engine {
	r := gin.Default()

	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("/active", orderHandler.GetActiveOrders)
		orders.GET("/maker/:address", orderHandler.GetOrdersByMaker)
		orders.GET("/:hash", orderHandler.GetOrderByHash)
		orders.GET("/:hash/status", orderHandler.GetOrderStatus)
		orders.POST("/:hash/cancel", orderHandler.CancelOrder)
	}

	r.GET("/orderbook", orderHandler.GetOrderbook)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
