package kernel_test

import (
	"testing"

	"shippingcost/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "half rounds up, not to even", input: "40.515", expected: "40.52"},
		{name: "half rounds up on even digit", input: "8.465", expected: "8.47"},
		{name: "below half rounds down", input: "8.4749", expected: "8.47"},
		{name: "already two places", input: "36.10", expected: "36.1"},
		{name: "negative half rounds away from zero", input: "-40.515", expected: "-40.52"},
		{name: "zero", input: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernel.RoundMoney(kernel.Money(tt.input))
			assert.True(t, got.Equal(kernel.Money(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("parses literal", func(t *testing.T) {
		assert.Equal(t, "12.5", kernel.Money("12.50").String())
	})

	t.Run("panics on malformed literal", func(t *testing.T) {
		assert.Panics(t, func() { kernel.Money("12,50") })
	})
}
