package kafka

// Topics the orderbook service talks to. order-events is outbound lifecycle
// notifications; order-status-events is the inbound feed from fill-tracking
// and expiry collaborators.
const (
	TopicOrderEvents       = "order-events"
	TopicOrderStatusEvents = "order-status-events"
)

const (
	EventOrderSubmitted = "ORDER_SUBMITTED"
	EventOrderCancelled = "ORDER_CANCELLED"
)

type OrderEvent struct {
	Event      string `json:"event"`
	OrderHash  string `json:"order_hash"`
	Maker      string `json:"maker"`
	MakerAsset string `json:"maker_asset"`
	TakerAsset string `json:"taker_asset"`
	NetworkID  int64  `json:"network_id"`
	Status     string `json:"status"`
}

// OrderStatusEvent carries an external status write. FilledAmount is a
// decimal string and may be empty when the collaborator has nothing to report.
type OrderStatusEvent struct {
	OrderHash    string `json:"order_hash"`
	Status       string `json:"status"`
	FilledAmount string `json:"filled_amount,omitempty"`
}
