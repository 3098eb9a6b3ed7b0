package shipping_test

import (
	"testing"

	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected shipping.Kind
	}{
		{input: "fast", expected: shipping.KindFast},
		{input: "economy", expected: shipping.KindEconomy},
		{input: "pickup", expected: shipping.KindPickup},
		{input: "promotional", expected: shipping.KindPromotional},
		{input: "  Economy ", expected: shipping.KindEconomy},
		{input: "FAST", expected: shipping.KindFast},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := shipping.ParseKind(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "drone"} {
			kind, err := shipping.ParseKind(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, shipping.KindUnknown, kind)
		}
	})
}

func TestKind_Validate(t *testing.T) {
	for _, kind := range shipping.Kinds() {
		require.NoError(t, kind.Validate())
	}

	for _, kind := range []shipping.Kind{shipping.KindUnknown, shipping.Kind(-1), shipping.Kind(99)} {
		err := kind.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is not a valid strategy kind")
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "fast", shipping.KindFast.String())
	assert.Equal(t, "economy", shipping.KindEconomy.String())
	assert.Equal(t, "pickup", shipping.KindPickup.String())
	assert.Equal(t, "promotional", shipping.KindPromotional.String())
	assert.Equal(t, "unknown", shipping.KindUnknown.String())
	assert.Equal(t, "unknown", shipping.Kind(42).String())
}
