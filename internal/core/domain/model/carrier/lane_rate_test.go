package carrier

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pincode
}

func Test_NewLaneRate_Created(t *testing.T) {
	origin := mustPincode(t, "400001")
	destination := mustPincode(t, "110001")

	lane, err := NewLaneRate(origin, destination, "DLV", "Delhivery",
		decimal.NewFromInt(120), true, 3)

	require.NoError(t, err)
	assert.NoError(t, lane.Validate())
	assert.Equal(t, origin, lane.Origin())
	assert.Equal(t, destination, lane.Destination())
	assert.Equal(t, "DLV", lane.CarrierCode())
	assert.Equal(t, "Delhivery", lane.CarrierName())
	assert.True(t, lane.Rate().Equal(decimal.NewFromInt(120)))
	assert.True(t, lane.CODAvailable())
	assert.Equal(t, 3, lane.TransitDays())
}

func Test_NewLaneRate_Invalid(t *testing.T) {
	origin := mustPincode(t, "400001")
	destination := mustPincode(t, "110001")

	tests := []struct {
		name        string
		carrierCode string
		carrierName string
		rate        decimal.Decimal
		transitDays int
	}{
		{"empty carrier code", "", "Delhivery", decimal.NewFromInt(120), 3},
		{"empty carrier name", "DLV", "", decimal.NewFromInt(120), 3},
		{"negative rate", "DLV", "Delhivery", decimal.NewFromInt(-1), 3},
		{"zero transit days", "DLV", "Delhivery", decimal.NewFromInt(120), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLaneRate(origin, destination, tt.carrierCode,
				tt.carrierName, tt.rate, false, tt.transitDays)
			assert.Error(t, err)
		})
	}
}

func Test_LaneRate_Validate_NotConstructed(t *testing.T) {
	var lane LaneRate
	assert.ErrorIs(t, lane.Validate(), ErrLaneRateIsNotConstructed)
}

func Test_SelectionStrategyFromString(t *testing.T) {
	strategy, err := SelectionStrategyFromString("CHEAPEST_FIRST")
	require.NoError(t, err)
	assert.Equal(t, CheapestFirst, strategy)
	assert.Equal(t, "CHEAPEST_FIRST", strategy.String())

	_, err = SelectionStrategyFromString("RANDOM")
	assert.Error(t, err)
}
