package mappers

import (
	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.LimitOrderModel) *domain.LimitOrder {
	order := &domain.LimitOrder{
		OrderHash:    model.OrderHash,
		NetworkID:    model.NetworkID,
		MakerAsset:   model.MakerAsset,
		TakerAsset:   model.TakerAsset,
		MakingAmount: model.MakingAmount,
		TakingAmount: model.TakingAmount,
		Maker:        model.Maker,
		Salt:         model.Salt,
		Receiver:     model.Receiver,
		MakerTraits:  model.MakerTraits,
		Signature:    model.Signature,
		Status:       model.Status,
		FilledAmount: model.FilledAmount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Extension != nil {
		order.Extension = &domain.Extension{
			ID:               model.Extension.ID,
			MakerAssetSuffix: model.Extension.MakerAssetSuffix,
			TakerAssetSuffix: model.Extension.TakerAssetSuffix,
			MakingAmountData: model.Extension.MakingAmountData,
			TakingAmountData: model.Extension.TakingAmountData,
			Predicate:        model.Extension.Predicate,
			MakerPermit:      model.Extension.MakerPermit,
			PreInteraction:   model.Extension.PreInteraction,
			PostInteraction:  model.Extension.PostInteraction,
			CustomData:       model.Extension.CustomData,
		}
	}
	return order
}

func ToGORMOrder(order *domain.LimitOrder) *models.LimitOrderModel {
	model := &models.LimitOrderModel{
		OrderHash:    order.OrderHash,
		NetworkID:    order.NetworkID,
		MakerAsset:   order.MakerAsset,
		TakerAsset:   order.TakerAsset,
		MakingAmount: order.MakingAmount,
		TakingAmount: order.TakingAmount,
		Maker:        order.Maker,
		Salt:         order.Salt,
		Receiver:     order.Receiver,
		MakerTraits:  order.MakerTraits,
		Signature:    order.Signature,
		Status:       order.Status,
		FilledAmount: order.FilledAmount,
	}
	if order.Extension != nil {
		model.ExtensionID = order.Extension.ID
		model.Extension = &models.ExtensionModel{
			ID:               order.Extension.ID,
			MakerAssetSuffix: order.Extension.MakerAssetSuffix,
			TakerAssetSuffix: order.Extension.TakerAssetSuffix,
			MakingAmountData: order.Extension.MakingAmountData,
			TakingAmountData: order.Extension.TakingAmountData,
			Predicate:        order.Extension.Predicate,
			MakerPermit:      order.Extension.MakerPermit,
			PreInteraction:   order.Extension.PreInteraction,
			PostInteraction:  order.Extension.PostInteraction,
			CustomData:       order.Extension.CustomData,
		}
	}
	return model
}
