package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
)

const orderbookSideLimit = 20

func (uc *DefaultOrderUsecase) GetOrderByHash(orderHash string) (*domain.LimitOrder, error) {
	return uc.OrderRepo.GetOrderByHash(orderHash)
}

// GetOrdersByMaker folds the maker to lower case and the status filter to
// upper case. An unknown status filter matches nothing rather than erroring.
func (uc *DefaultOrderUsecase) GetOrdersByMaker(maker, status string, page, limit int) (*orderdto.PageOutput, error) {
	defer uc.observeQuery("orders_by_maker", time.Now())

	page, limit = orderdto.NormalizePagination(page, limit)
	orders, total, err := uc.OrderRepo.GetOrdersByMaker(
		strings.ToLower(maker),
		strings.ToUpper(status),
		page, limit,
	)
	if err != nil {
		return nil, err
	}

	return &orderdto.PageOutput{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// GetActiveOrders lists ACTIVE orders narrowed by the optional filters. The
// maker filter is lower-cased; asset filters are matched exactly as given,
// mirroring the submission-side behavior.
func (uc *DefaultOrderUsecase) GetActiveOrders(maker, makerAsset, takerAsset string, page, limit int) (*orderdto.PageOutput, error) {
	defer uc.observeQuery("active_orders", time.Now())

	page, limit = orderdto.NormalizePagination(page, limit)
	orders, total, err := uc.OrderRepo.GetActiveOrders(domain.ActiveOrderFilters{
		Maker:      strings.ToLower(maker),
		MakerAsset: makerAsset,
		TakerAsset: takerAsset,
	}, page, limit)
	if err != nil {
		return nil, err
	}

	return &orderdto.PageOutput{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// GetOrderbook assembles both sides of a pair. A sell order holds the pair as
// requested; a buy order is simply an active order whose asset pair is the
// mirror image of the request.
func (uc *DefaultOrderUsecase) GetOrderbook(makerAsset, takerAsset string) (*domain.Orderbook, error) {
	if makerAsset == "" || takerAsset == "" {
		return nil, domain.ErrMissingParameter
	}

	defer uc.observeQuery("orderbook", time.Now())

	cacheKey := fmt.Sprintf("orderbook:%s/%s", makerAsset, takerAsset)
	if cached := uc.cachedOrderbook(cacheKey); cached != nil {
		return cached, nil
	}

	sellOrders, err := uc.OrderRepo.GetActiveOrdersByPair(makerAsset, takerAsset, orderbookSideLimit)
	if err != nil {
		return nil, err
	}
	buyOrders, err := uc.OrderRepo.GetActiveOrdersByPair(takerAsset, makerAsset, orderbookSideLimit)
	if err != nil {
		return nil, err
	}

	orderbook := &domain.Orderbook{
		BuyOrders:  buyOrders,
		SellOrders: sellOrders,
		Pair:       fmt.Sprintf("%s/%s", makerAsset, takerAsset),
	}
	uc.storeOrderbook(cacheKey, orderbook)

	return orderbook, nil
}

// cachedOrderbook returns a cached snapshot or nil; cache failures always
// degrade to a database read.
func (uc *DefaultOrderUsecase) cachedOrderbook(key string) *domain.Orderbook {
	if uc.Cache == nil {
		return nil
	}

	raw, err := uc.Cache.Get(context.Background(), key)
	if err != nil {
		return nil
	}

	var orderbook domain.Orderbook
	if err := json.Unmarshal([]byte(raw), &orderbook); err != nil {
		slog.Warn("failed to decode cached orderbook", "key", key, "error", err.Error())
		return nil
	}
	return &orderbook
}

func (uc *DefaultOrderUsecase) storeOrderbook(key string, orderbook *domain.Orderbook) {
	if uc.Cache == nil {
		return
	}

	v, err := json.Marshal(orderbook)
	if err != nil {
		return
	}
	if err := uc.Cache.Set(context.Background(), key, v, uc.CacheTTL); err != nil {
		slog.Warn("failed to cache orderbook", "key", key, "error", err.Error())
	}
}

func (uc *DefaultOrderUsecase) observeQuery(query string, start time.Time) {
	if uc.Metrics != nil {
		uc.Metrics.RecordQueryDuration(query, time.Since(start).Seconds())
	}
}
