package response

import (
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	orderdto "github.com/bundl-protocol/orderbook-service/internal/usecase/dto/order"
)

type ExtensionResponse struct {
	MakerAssetSuffix string `json:"maker_asset_suffix"`
	TakerAssetSuffix string `json:"taker_asset_suffix"`
	MakingAmountData string `json:"making_amount_data"`
	TakingAmountData string `json:"taking_amount_data"`
	Predicate        string `json:"predicate"`
	MakerPermit      string `json:"maker_permit"`
	PreInteraction   string `json:"pre_interaction"`
	PostInteraction  string `json:"post_interaction"`
	CustomData       string `json:"custom_data"`
}

type OrderResponse struct {
	OrderHash    string             `json:"order_hash"`
	NetworkID    int64              `json:"network_id"`
	MakerAsset   string             `json:"maker_asset"`
	TakerAsset   string             `json:"taker_asset"`
	MakingAmount string             `json:"making_amount"`
	TakingAmount string             `json:"taking_amount"`
	Maker        string             `json:"maker"`
	Salt         string             `json:"salt"`
	Receiver     string             `json:"receiver"`
	MakerTraits  string             `json:"maker_traits"`
	Extension    *ExtensionResponse `json:"extension"`
	Signature    string             `json:"signature"`
	Status       string             `json:"status"`
	FilledAmount string             `json:"filled_amount"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromDomainOrder(order *domain.LimitOrder) *OrderResponse {
	resp := &OrderResponse{
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
		Status:       string(order.Status),
		FilledAmount: order.FilledAmount,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	if order.Extension != nil {
		resp.Extension = &ExtensionResponse{
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
	return resp
}

func FromDomainOrders(orders []*domain.LimitOrder) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = FromDomainOrder(order)
	}
	return out
}

// PageResponse is the standard count/next/previous/results envelope. The
// cursors are page numbers, absent at either end of the set.
type PageResponse struct {
	Count    int64            `json:"count"`
	Next     *int             `json:"next"`
	Previous *int             `json:"previous"`
	Results  []*OrderResponse `json:"results"`
}

func FromPage(page *orderdto.PageOutput) *PageResponse {
	resp := &PageResponse{
		Count:   page.Total,
		Results: FromDomainOrders(page.Orders),
	}
	if int64(page.Page*page.Limit) < page.Total {
		next := page.Page + 1
		resp.Next = &next
	}
	if page.Page > 1 {
		previous := page.Page - 1
		resp.Previous = &previous
	}
	return resp
}

type OrderbookResponse struct {
	BuyOrders  []*OrderResponse `json:"buyOrders"`
	SellOrders []*OrderResponse `json:"sellOrders"`
	Pair       string           `json:"pair"`
}

func FromDomainOrderbook(orderbook *domain.Orderbook) *OrderbookResponse {
	return &OrderbookResponse{
		BuyOrders:  FromDomainOrders(orderbook.BuyOrders),
		SellOrders: FromDomainOrders(orderbook.SellOrders),
		Pair:       orderbook.Pair,
	}
}

// StatusResponse mirrors the status endpoint shape: a slim camelCase view of
// the mutable order fields.
type StatusResponse struct {
	OrderHash    string    `json:"orderHash"`
	Status       string    `json:"status"`
	FilledAmount string    `json:"filledAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDomainOrderStatus(order *domain.LimitOrder) *StatusResponse {
	return &StatusResponse{
		OrderHash:    order.OrderHash,
		Status:       string(order.Status),
		FilledAmount: order.FilledAmount,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}
