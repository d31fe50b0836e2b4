package models

import (
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
)

type ExtensionModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	MakerAssetSuffix string `gorm:"type:text"`
	TakerAssetSuffix string `gorm:"type:text"`
	MakingAmountData string `gorm:"type:text"`
	TakingAmountData string `gorm:"type:text"`
	Predicate        string `gorm:"type:text"`
	MakerPermit      string `gorm:"type:text"`
	PreInteraction   string `gorm:"type:text"`
	PostInteraction  string `gorm:"type:text"`
	CustomData       string `gorm:"type:text"`
}

// LimitOrderModel keys rows by the order hash itself, so the primary key is
// the storage-level uniqueness guarantee for concurrent submissions of the
// same hash. Amount columns are varchar(78): enough for any 256-bit unsigned
// integer in decimal form.
type LimitOrderModel struct {
	OrderHash    string             `gorm:"primaryKey;size:66"`
	NetworkID    int64              `gorm:"not null;default:1"`
	MakerAsset   string             `gorm:"size:42;index:idx_pair"`
	TakerAsset   string             `gorm:"size:42;index:idx_pair"`
	MakingAmount string             `gorm:"size:78"`
	TakingAmount string             `gorm:"size:78"`
	Maker        string             `gorm:"size:42;index:idx_maker_status"`
	Salt         string             `gorm:"size:78"`
	Receiver     string             `gorm:"size:42"`
	MakerTraits  string             `gorm:"size:78"`
	ExtensionID  string             `gorm:"type:uuid"`
	Extension    *ExtensionModel    `gorm:"foreignKey:ExtensionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Signature    string             `gorm:"size:132"`
	Status       domain.OrderStatus `gorm:"size:10;index:idx_maker_status;index:idx_status_created"`
	FilledAmount string             `gorm:"size:78;default:'0'"`
	CreatedAt    time.Time          `gorm:"index:idx_status_created"`
	UpdatedAt    time.Time
}
