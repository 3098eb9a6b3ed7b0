package commands_test

import (
	"testing"

	"shippingcost/internal/core/application/usecases/commands"
	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("PED003", kernel.Money("420.00"), kernel.Money("5.0"),
		kernel.Money("500"), shipping.KindPromotional, kernel.Money("300"))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "PED003", cmd.OrderID())
	assert.True(t, kernel.Money("420.00").Equal(cmd.PriceBeforeShipping()))
	assert.True(t, kernel.Money("5.0").Equal(cmd.WeightKg()))
	assert.True(t, kernel.Money("500").Equal(cmd.DistanceKm()))
	assert.Equal(t, shipping.KindPromotional, cmd.StrategyKind())
	assert.True(t, kernel.Money("300").Equal(cmd.Threshold()))
}

func TestNewCreateOrderCommand_GeneratesIDWhenEmpty(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("", kernel.Money("10"), kernel.Money("1"),
		kernel.Money("1"), shipping.KindFast, decimal.Zero)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(cmd.OrderID())
	assert.NoError(t, parseErr)
}

func TestNewCreateOrderCommand_NegativeAmounts(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("PED001", kernel.Money("-1"), kernel.Money("-2"),
		kernel.Money("-3"), shipping.KindEconomy, kernel.Money("-4"))

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "priceBeforeShipping")
	assert.Contains(t, err.Error(), "weightKg")
	assert.Contains(t, err.Error(), "distanceKm")
	assert.Contains(t, err.Error(), "threshold")
}

func TestNewCreateOrderCommand_UnknownStrategyKind(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("PED001", kernel.Money("1"), kernel.Money("1"),
		kernel.Money("1"), shipping.KindUnknown, decimal.Zero)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
