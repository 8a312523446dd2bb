// Package lanerepo reads the legacy static carrier lane table. The table is
// reference data maintained by operations imports; the engine only reads it,
// as the fallback when the rate-quote provider cannot serve a lane.
package lanerepo

import (
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// LaneRateDTO represents one row of the legacy lane table.
type LaneRateDTO struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Origin       string          `gorm:"index:idx_lane,priority:1;size:6"`
	Destination  string          `gorm:"index:idx_lane,priority:2;size:6"`
	CarrierCode  string          `gorm:"size:32"`
	CarrierName  string          `gorm:"size:64"`
	Rate         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CODAvailable bool
	TransitDays  int
}

// TableName specifies the database table name for lane rates.
func (LaneRateDTO) TableName() string {
	return "carrier_lane_rates"
}

// toDomain converts a database row to a validated lane rate value object.
func toDomain(dto LaneRateDTO) (carrier.LaneRate, error) {
	origin, err := kernel.NewPincode(dto.Origin)
	if err != nil {
		return carrier.LaneRate{}, err
	}
	destination, err := kernel.NewPincode(dto.Destination)
	if err != nil {
		return carrier.LaneRate{}, err
	}

	return carrier.NewLaneRate(origin, destination, dto.CarrierCode, dto.CarrierName,
		dto.Rate, dto.CODAvailable, dto.TransitDays)
}
