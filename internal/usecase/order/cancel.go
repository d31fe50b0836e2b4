package usecase

import (
	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/kafka"
)

// CancelOrder moves a PENDING or ACTIVE order to CANCELLED. The transition
// check and the write happen in one conditional update inside the repository,
// so a second cancel of the same order reports the real current status.
func (uc *DefaultOrderUsecase) CancelOrder(orderHash string) (*domain.LimitOrder, error) {
	order, err := uc.OrderRepo.CancelOrder(orderHash)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCancelled()
	}
	uc.publishOrderEvent(kafka.EventOrderCancelled, order)

	return order, nil
}
