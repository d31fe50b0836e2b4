package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusActive    OrderStatus = "ACTIVE"
	StatusFilled    OrderStatus = "FILLED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusExpired   OrderStatus = "EXPIRED"
)

// ParseStatus maps a caller-supplied status string onto the closed status set.
// Input is upper-cased first; unknown values report ok=false.
func ParseStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(strings.ToUpper(s)); status {
	case StatusPending, StatusActive, StatusFilled, StatusCancelled, StatusExpired:
		return status, true
	default:
		return "", false
	}
}

// Cancellable reports whether an order in this status may still be cancelled.
// FILLED, CANCELLED and EXPIRED are terminal.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusActive
}

// Extension holds protocol-encoded auxiliary order data. The service never
// interprets these values, it only stores and returns them.
type Extension struct {
	ID               string
	MakerAssetSuffix string
	TakerAssetSuffix string
	MakingAmountData string
	TakingAmountData string
	Predicate        string
	MakerPermit      string
	PreInteraction   string
	PostInteraction  string
	CustomData       string
}

// LimitOrder is a signed off-chain limit order. Amount fields are decimal
// strings so that 256-bit values survive round-trips untouched.
type LimitOrder struct {
	OrderHash    string
	NetworkID    int64
	MakerAsset   string
	TakerAsset   string
	MakingAmount string
	TakingAmount string
	Maker        string
	Salt         string
	Receiver     string
	MakerTraits  string
	Extension    *Extension
	Signature    string
	Status       OrderStatus
	FilledAmount string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveOrderFilters narrows the active-order listing. Empty fields are
// skipped. Maker must already be lower-cased by the caller; asset addresses
// are matched exactly as given.
type ActiveOrderFilters struct {
	Maker      string
	MakerAsset string
	TakerAsset string
}

// Orderbook pairs the two sides of a trading pair. SellOrders hold the pair
// as requested, BuyOrders hold the mirrored pair.
type Orderbook struct {
	BuyOrders  []*LimitOrder
	SellOrders []*LimitOrder
	Pair       string
}
