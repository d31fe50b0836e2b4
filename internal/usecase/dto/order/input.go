package orderdto

import (
	"fmt"

	"github.com/bundl-protocol/orderbook-service/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	maxOrderHashLen = 66
	maxSignatureLen = 132
	maxAmountDigits = 78

	DefaultPageSize = 50
	MaxPageSize     = 100
)

var extensionKeys = []string{
	"makerAssetSuffix",
	"takerAssetSuffix",
	"makingAmountData",
	"takingAmountData",
	"predicate",
	"makerPermit",
	"preInteraction",
	"postInteraction",
	"customData",
}

// RawSubmission mirrors the wire payload permissively. Required data fields
// are pointers so a missing key is distinguishable from an empty string.
type RawSubmission struct {
	OrderHash string        `json:"orderHash"`
	Signature string        `json:"signature"`
	Data      *RawOrderData `json:"data"`
	NetworkID int64         `json:"networkId"`
}

type RawOrderData struct {
	MakerAsset   *string           `json:"makerAsset"`
	TakerAsset   *string           `json:"takerAsset"`
	Maker        *string           `json:"maker"`
	Receiver     *string           `json:"receiver"`
	MakingAmount *string           `json:"makingAmount"`
	TakingAmount *string           `json:"takingAmount"`
	Salt         *string           `json:"salt"`
	MakerTraits  *string           `json:"makerTraits"`
	Extension    map[string]string `json:"extension"`
}

// SubmitOrderInput is the validated, fully typed submission.
type SubmitOrderInput struct {
	OrderHash    string
	Signature    string
	NetworkID    int64
	MakerAsset   string
	TakerAsset   string
	Maker        string
	Receiver     string
	MakingAmount string
	TakingAmount string
	Salt         string
	MakerTraits  string
	Extension    ExtensionInput
}

type ExtensionInput struct {
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

// ValidateSubmission turns the raw payload into a typed submission or a
// field-keyed error map. It is a pure function: no storage access, no
// normalization beyond the networkId default.
func ValidateSubmission(raw *RawSubmission) (*SubmitOrderInput, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}

	if raw.OrderHash == "" {
		errs.Add("orderHash", "This field is required.")
	} else if len(raw.OrderHash) > maxOrderHashLen {
		errs.Add("orderHash", fmt.Sprintf("Ensure this field has no more than %d characters.", maxOrderHashLen))
	}

	if raw.Signature == "" {
		errs.Add("signature", "This field is required.")
	} else if len(raw.Signature) > maxSignatureLen {
		errs.Add("signature", fmt.Sprintf("Ensure this field has no more than %d characters.", maxSignatureLen))
	}

	if raw.Data == nil {
		errs.Add("data", "This field is required.")
		return nil, errs
	}

	data := raw.Data
	requireField(errs, "makerAsset", data.MakerAsset)
	requireField(errs, "takerAsset", data.TakerAsset)
	requireField(errs, "maker", data.Maker)
	requireField(errs, "receiver", data.Receiver)
	requireAmount(errs, "makingAmount", data.MakingAmount)
	requireAmount(errs, "takingAmount", data.TakingAmount)
	requireAmount(errs, "salt", data.Salt)
	requireAmount(errs, "makerTraits", data.MakerTraits)

	if data.Extension == nil {
		errs.Add("extension", "Missing required field in data: extension")
	} else {
		for _, key := range extensionKeys {
			if _, ok := data.Extension[key]; !ok {
				errs.Add("extension", fmt.Sprintf("Missing required extension field: %s", key))
				break
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	networkID := raw.NetworkID
	if networkID <= 0 {
		networkID = 1
	}

	return &SubmitOrderInput{
		OrderHash:    raw.OrderHash,
		Signature:    raw.Signature,
		NetworkID:    networkID,
		MakerAsset:   *data.MakerAsset,
		TakerAsset:   *data.TakerAsset,
		Maker:        *data.Maker,
		Receiver:     *data.Receiver,
		MakingAmount: *data.MakingAmount,
		TakingAmount: *data.TakingAmount,
		Salt:         *data.Salt,
		MakerTraits:  *data.MakerTraits,
		Extension: ExtensionInput{
			MakerAssetSuffix: data.Extension["makerAssetSuffix"],
			TakerAssetSuffix: data.Extension["takerAssetSuffix"],
			MakingAmountData: data.Extension["makingAmountData"],
			TakingAmountData: data.Extension["takingAmountData"],
			Predicate:        data.Extension["predicate"],
			MakerPermit:      data.Extension["makerPermit"],
			PreInteraction:   data.Extension["preInteraction"],
			PostInteraction:  data.Extension["postInteraction"],
			CustomData:       data.Extension["customData"],
		},
	}, nil
}

func requireField(errs domain.ValidationErrors, field string, value *string) {
	if value == nil {
		errs.Add(field, fmt.Sprintf("Missing required field in data: %s", field))
	}
}

// requireAmount checks that a big-integer field is a non-negative decimal
// integer string. The value is stored verbatim afterwards, never parsed into
// a fixed-width numeric type.
func requireAmount(errs domain.ValidationErrors, field string, value *string) {
	if value == nil {
		errs.Add(field, fmt.Sprintf("Missing required field in data: %s", field))
		return
	}
	if *value == "" {
		return
	}
	if len(*value) > maxAmountDigits {
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d digits.", maxAmountDigits))
		return
	}
	d, err := decimal.NewFromString(*value)
	if err != nil || !d.IsInteger() {
		errs.Add(field, "Must be a decimal integer string.")
		return
	}
	if d.IsNegative() {
		errs.Add(field, "Must be a non-negative integer.")
	}
}

// NormalizePagination clamps caller-supplied paging to the service defaults.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
