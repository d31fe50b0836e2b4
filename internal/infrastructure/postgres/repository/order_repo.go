package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres/mappers"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// CreateOrder persists the extension and the order as one transaction. The
// order hash is the primary key, so a concurrent submission of the same hash
// loses at the INSERT itself, never at an application-level pre-check.
func (r *DefaultOrderRepository) CreateOrder(order *domain.LimitOrder) (*domain.LimitOrder, error) {
	orderModel := mappers.ToGORMOrder(order)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if orderModel.Extension != nil {
			if err := tx.Create(orderModel.Extension).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Extension").Create(orderModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateOrder
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return mappers.ToDomainOrder(orderModel), nil
}

func (r *DefaultOrderRepository) GetOrderByHash(orderHash string) (*domain.LimitOrder, error) {
	var orderModel models.LimitOrderModel
	if err := r.DB.Preload("Extension").
		First(&orderModel, "order_hash = ?", orderHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

// CancelOrder flips the status to CANCELLED with a single conditional UPDATE,
// so two racing cancels cannot both observe a cancellable pre-image. A zero
// row count is disambiguated with a follow-up read.
func (r *DefaultOrderRepository) CancelOrder(orderHash string) (*domain.LimitOrder, error) {
	res := r.DB.Model(&models.LimitOrderModel{}).
		Where("order_hash = ? AND status IN ?", orderHash, []domain.OrderStatus{domain.StatusPending, domain.StatusActive}).
		Updates(map[string]interface{}{
			"status":     domain.StatusCancelled,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		order, err := r.GetOrderByHash(orderHash)
		if err != nil {
			return nil, err
		}
		return nil, domain.NewInvalidTransitionError(order.Status)
	}

	return r.GetOrderByHash(orderHash)
}

// UpdateOrderStatus is the unrestricted write path used by external
// collaborators (fill tracking, expiry sweeps). An empty filledAmount leaves
// the stored value untouched.
func (r *DefaultOrderRepository) UpdateOrderStatus(orderHash string, newStatus domain.OrderStatus, filledAmount string) (*domain.LimitOrder, error) {
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if filledAmount != "" {
		updates["filled_amount"] = filledAmount
	}

	res := r.DB.Model(&models.LimitOrderModel{}).
		Where("order_hash = ?", orderHash).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrOrderNotFound
	}

	return r.GetOrderByHash(orderHash)
}

// GetOrdersByMaker expects maker already lower-cased and status already
// upper-cased by the caller. An unknown status matches nothing rather than
// erroring.
func (r *DefaultOrderRepository) GetOrdersByMaker(maker, status string, page, limit int) ([]*domain.LimitOrder, int64, error) {
	baseQuery := r.DB.Model(&models.LimitOrderModel{}).
		Where("maker = ?", maker)

	if status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}

	return r.pageQuery(baseQuery, page, limit)
}

// GetActiveOrders narrows the ACTIVE set by the optional filters. The maker
// filter is matched lower-cased; asset filters are matched exactly as given.
func (r *DefaultOrderRepository) GetActiveOrders(filters domain.ActiveOrderFilters, page, limit int) ([]*domain.LimitOrder, int64, error) {
	baseQuery := r.DB.Model(&models.LimitOrderModel{}).
		Where("status = ?", domain.StatusActive)

	if filters.Maker != "" {
		baseQuery = baseQuery.Where("maker = ?", filters.Maker)
	}
	if filters.MakerAsset != "" {
		baseQuery = baseQuery.Where("maker_asset = ?", filters.MakerAsset)
	}
	if filters.TakerAsset != "" {
		baseQuery = baseQuery.Where("taker_asset = ?", filters.TakerAsset)
	}

	return r.pageQuery(baseQuery, page, limit)
}

func (r *DefaultOrderRepository) GetActiveOrdersByPair(makerAsset, takerAsset string, limit int) ([]*domain.LimitOrder, error) {
	var orderModels []models.LimitOrderModel
	err := r.DB.Preload("Extension").
		Where("maker_asset = ? AND taker_asset = ? AND status = ?", makerAsset, takerAsset, domain.StatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders by pair: %w", err)
	}

	orders := make([]*domain.LimitOrder, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

func (r *DefaultOrderRepository) pageQuery(baseQuery *gorm.DB, page, limit int) ([]*domain.LimitOrder, int64, error) {
	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	var orderModels []models.LimitOrderModel
	err := baseQuery.
		Preload("Extension").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.LimitOrder, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}
