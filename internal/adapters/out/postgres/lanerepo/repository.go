package lanerepo

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormLaneTable implements the carrier selector's LaneTable against the
// legacy lane rates table.
type GormLaneTable struct {
	db *gorm.DB
}

// NewGormLaneTable creates a new GORM lane table reader.
func NewGormLaneTable(db *gorm.DB) *GormLaneTable {
	return &GormLaneTable{db: db}
}

// LanesFor reads every lane rate for an origin-destination pair, cheapest
// first.
func (r *GormLaneTable) LanesFor(
	ctx context.Context,
	origin, destination kernel.Pincode,
) ([]carrier.LaneRate, error) {
	var dtos []LaneRateDTO
	err := r.db.WithContext(ctx).
		Where("origin = ? AND destination = ?", origin.String(), destination.String()).
		Order("rate").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lanes := make([]carrier.LaneRate, 0, len(dtos))
	for _, dto := range dtos {
		lane, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		lanes = append(lanes, lane)
	}

	return lanes, nil
}
