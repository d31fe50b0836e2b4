package orderdto

import "github.com/bundl-protocol/orderbook-service/internal/domain"

// PageOutput is one page of orders plus the filtered total.
type PageOutput struct {
	Orders []*domain.LimitOrder
	Total  int64
	Page   int
	Limit  int
}
