package domain

type OrderRepository interface {
	CreateOrder(order *LimitOrder) (*LimitOrder, error)
	GetOrderByHash(orderHash string) (*LimitOrder, error)
	CancelOrder(orderHash string) (*LimitOrder, error)
	UpdateOrderStatus(orderHash string, newStatus OrderStatus, filledAmount string) (*LimitOrder, error)
	GetOrdersByMaker(maker, status string, page, limit int) ([]*LimitOrder, int64, error)
	GetActiveOrders(filters ActiveOrderFilters, page, limit int) ([]*LimitOrder, int64, error)
	GetActiveOrdersByPair(makerAsset, takerAsset string, limit int) ([]*LimitOrder, error)
}
