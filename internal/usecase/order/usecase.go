package usecase

import (
	"context"
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/cache"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/metrics"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	SubmitOrder(raw *orderdto.RawSubmission) (*domain.LimitOrder, error)
	CancelOrder(orderHash string) (*domain.LimitOrder, error)

	GetOrderByHash(orderHash string) (*domain.LimitOrder, error)
	GetOrdersByMaker(maker, status string, page, limit int) (*orderdto.PageOutput, error)
	GetActiveOrders(maker, makerAsset, takerAsset string, page, limit int) (*orderdto.PageOutput, error)
	GetOrderbook(makerAsset, takerAsset string) (*domain.Orderbook, error)

	StartStatusEventWorker(ctx context.Context)
}

type DefaultOrderUsecase struct {
	OrderRepo  domain.OrderRepository
	Publisher  domain.PublisherPort
	Subscriber domain.SubscriberPort
	Cache      *cache.RedisClient
	CacheTTL   time.Duration
	Metrics    *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	publisher domain.PublisherPort,
	subscriber domain.SubscriberPort,
	redisCache *cache.RedisClient,
	cacheTTL time.Duration,
	orderMetrics *metrics.OrderMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:  orderRepo,
		Publisher:  publisher,
		Subscriber: subscriber,
		Cache:      redisCache,
		CacheTTL:   cacheTTL,
		Metrics:    orderMetrics,
	}
}
