package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/kafka"
)

const statusEventGroupID = "orderbook-service"

// StartStatusEventWorker consumes the status feed written by external
// collaborators (the fill-tracking bot, expiry sweeps) and applies the writes
// through the store. Malformed or unknown-status events are logged and
// skipped; the worker exits when the channel closes or the context is done.
func (uc *DefaultOrderUsecase) StartStatusEventWorker(ctx context.Context) {
	if uc.Subscriber == nil {
		return
	}

	messages, err := uc.Subscriber.Subscribe(kafka.TopicOrderStatusEvents, statusEventGroupID)
	if err != nil {
		slog.Error("failed to subscribe to status events", "error", err.Error())
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			uc.applyStatusEvent(msg)
		}
	}
}

func (uc *DefaultOrderUsecase) applyStatusEvent(msg domain.Message) {
	var event kafka.OrderStatusEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.Warn("skipping malformed status event", "error", err.Error())
		return
	}

	status, ok := domain.ParseStatus(event.Status)
	if !ok {
		slog.Warn("skipping status event with unknown status",
			"order_hash", event.OrderHash, "status", event.Status)
		return
	}

	if _, err := uc.OrderRepo.UpdateOrderStatus(event.OrderHash, status, event.FilledAmount); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			slog.Warn("status event for unknown order", "order_hash", event.OrderHash)
			return
		}
		slog.Error("failed to apply status event",
			"order_hash", event.OrderHash, "status", string(status), "error", err.Error())
		return
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordStatusTransition(string(status))
	}
	slog.Info("applied external status write", "order_hash", event.OrderHash, "status", string(status))
}
