package usecase

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/kafka"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
	"github.com/google/uuid"
)

// SubmitOrder validates the raw payload, normalizes the maker address and
// persists the order with its extension as one unit. The order goes straight
// to ACTIVE; duplicate hashes surface as domain.ErrDuplicateOrder from the
// storage-level uniqueness constraint.
func (uc *DefaultOrderUsecase) SubmitOrder(raw *orderdto.RawSubmission) (*domain.LimitOrder, error) {
	input, validationErrs := orderdto.ValidateSubmission(raw)
	if validationErrs != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordValidationFailure()
		}
		return nil, validationErrs
	}

	order := &domain.LimitOrder{
		OrderHash:    input.OrderHash,
		NetworkID:    input.NetworkID,
		MakerAsset:   input.MakerAsset,
		TakerAsset:   input.TakerAsset,
		MakingAmount: input.MakingAmount,
		TakingAmount: input.TakingAmount,
		Maker:        strings.ToLower(input.Maker),
		Salt:         input.Salt,
		Receiver:     input.Receiver,
		MakerTraits:  input.MakerTraits,
		Signature:    input.Signature,
		Status:       domain.StatusActive,
		FilledAmount: "0",
		Extension: &domain.Extension{
			ID:               uuid.New().String(),
			MakerAssetSuffix: input.Extension.MakerAssetSuffix,
			TakerAssetSuffix: input.Extension.TakerAssetSuffix,
			MakingAmountData: input.Extension.MakingAmountData,
			TakingAmountData: input.Extension.TakingAmountData,
			Predicate:        input.Extension.Predicate,
			MakerPermit:      input.Extension.MakerPermit,
			PreInteraction:   input.Extension.PreInteraction,
			PostInteraction:  input.Extension.PostInteraction,
			CustomData:       input.Extension.CustomData,
		},
	}

	savedOrder, err := uc.OrderRepo.CreateOrder(order)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) && uc.Metrics != nil {
			uc.Metrics.RecordDuplicateOrder()
		}
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderSubmitted(strconv.FormatInt(savedOrder.NetworkID, 10))
	}
	uc.publishOrderEvent(kafka.EventOrderSubmitted, savedOrder)

	return savedOrder, nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(event string, order *domain.LimitOrder) {
	if uc.Publisher == nil {
		return
	}

	v, err := json.Marshal(kafka.OrderEvent{
		Event:      event,
		OrderHash:  order.OrderHash,
		Maker:      order.Maker,
		MakerAsset: order.MakerAsset,
		TakerAsset: order.TakerAsset,
		NetworkID:  order.NetworkID,
		Status:     string(order.Status),
	})
	if err != nil {
		slog.Error("failed to marshal order event", "order_hash", order.OrderHash, "error", err.Error())
		return
	}

	msg := domain.Message{Key: []byte(order.OrderHash), Value: v}
	if err := uc.Publisher.Publish(kafka.TopicOrderEvents, msg); err != nil {
		slog.Error("failed to publish order event", "order_hash", order.OrderHash, "error", err.Error())
	}
}
