package orderdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validRawSubmission() *RawSubmission {
	return &RawSubmission{
		OrderHash: "0xabc123",
		Signature: "0xdeadbeef",
		NetworkID: 8453,
		Data: &RawOrderData{
			MakerAsset:   strPtr("0x4200000000000000000000000000000000000006"),
			TakerAsset:   strPtr("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
			Maker:        strPtr("0xAbCdEf0123456789abcdef0123456789ABCDEF01"),
			Receiver:     strPtr(""),
			MakingAmount: strPtr("1000000000000000000000"),
			TakingAmount: strPtr("2500000000"),
			Salt:         strPtr("42"),
			MakerTraits:  strPtr("0"),
			Extension: map[string]string{
				"makerAssetSuffix": "",
				"takerAssetSuffix": "",
				"makingAmountData": "0x01",
				"takingAmountData": "0x02",
				"predicate":        "0x03",
				"makerPermit":      "",
				"preInteraction":   "",
				"postInteraction":  "",
				"customData":       "",
			},
		},
	}
}

func TestValidateSubmission(t *testing.T) {
	input, errs := ValidateSubmission(validRawSubmission())
	require.Nil(t, errs)
	require.NotNil(t, input)

	// big-integer strings must survive untouched
	assert.Equal(t, "1000000000000000000000", input.MakingAmount)
	assert.Equal(t, "0xabc123", input.OrderHash)
	assert.Equal(t, int64(8453), input.NetworkID)
	assert.Equal(t, "0x01", input.Extension.MakingAmountData)
}

func TestValidateSubmissionDefaultsNetworkID(t *testing.T) {
	raw := validRawSubmission()
	raw.NetworkID = 0

	input, errs := ValidateSubmission(raw)
	require.Nil(t, errs)
	assert.Equal(t, int64(1), input.NetworkID)
}

func TestValidateSubmissionMissingTopLevelFields(t *testing.T) {
	input, errs := ValidateSubmission(&RawSubmission{})
	require.Nil(t, input)

	assert.Contains(t, errs, "orderHash")
	assert.Contains(t, errs, "signature")
	assert.Contains(t, errs, "data")
}

func TestValidateSubmissionMissingDataFields(t *testing.T) {
	raw := validRawSubmission()
	raw.Data.MakerAsset = nil
	raw.Data.Receiver = nil
	raw.Data.Salt = nil

	input, errs := ValidateSubmission(raw)
	require.Nil(t, input)

	assert.Contains(t, errs, "makerAsset")
	assert.Contains(t, errs, "receiver")
	assert.Contains(t, errs, "salt")
	assert.NotContains(t, errs, "takerAsset")
}

func TestValidateSubmissionExtension(t *testing.T) {
	raw := validRawSubmission()
	raw.Data.Extension = nil
	_, errs := ValidateSubmission(raw)
	assert.Contains(t, errs, "extension")

	raw = validRawSubmission()
	delete(raw.Data.Extension, "predicate")
	_, errs = ValidateSubmission(raw)
	require.Contains(t, errs, "extension")
	assert.Contains(t, errs["extension"], "predicate")
}

func TestValidateSubmissionAmounts(t *testing.T) {
	cases := map[string]string{
		"not-a-number": "Must be a decimal integer string.",
		"1.5":          "Must be a decimal integer string.",
		"-10":          "Must be a non-negative integer.",
	}
	for value, message := range cases {
		raw := validRawSubmission()
		raw.Data.MakingAmount = strPtr(value)

		_, errs := ValidateSubmission(raw)
		require.Contains(t, errs, "makingAmount", value)
		assert.Equal(t, message, errs["makingAmount"])
	}

	// 78 digits is the ceiling, 79 is out
	raw := validRawSubmission()
	digits := make([]byte, 79)
	for i := range digits {
		digits[i] = '9'
	}
	raw.Data.MakingAmount = strPtr(string(digits))
	_, errs := ValidateSubmission(raw)
	assert.Contains(t, errs, "makingAmount")

	raw = validRawSubmission()
	raw.Data.MakingAmount = strPtr(string(digits[:78]))
	_, errs = ValidateSubmission(raw)
	assert.Nil(t, errs)
}

func TestNormalizePagination(t *testing.T) {
	page, limit := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, limit)

	page, limit = NormalizePagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	_, limit = NormalizePagination(1, 500)
	assert.Equal(t, MaxPageSize, limit)
}
