package backorderrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBackorderRepository implements BackorderRepository using GORM.
type GormBackorderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBackorderRepository creates a new GORM backorder repository.
func NewGormBackorderRepository(db *gorm.DB, tracker aggregateTracker) *GormBackorderRepository {
	return &GormBackorderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new backorder to the database.
func (r *GormBackorderRepository) Add(ctx context.Context, aggregate *backorder.Backorder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing backorder to the database.
func (r *GormBackorderRepository) Update(ctx context.Context, aggregate *backorder.Backorder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BackorderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a backorder by ID.
func (r *GormBackorderRepository) Get(ctx context.Context, id kernel.UUID) (*backorder.Backorder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BackorderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("backorder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByProduct retrieves every open backorder for a product in drain
// order: ascending priority, then age.
func (r *GormBackorderRepository) GetOpenByProduct(
	ctx context.Context,
	productID kernel.UUID,
) ([]*backorder.Backorder, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BackorderDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status IN ?", productID.Bytes(),
			[]int{int(backorder.Pending), int(backorder.PartiallyAvailable)}).
		Order("priority, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	backorders := make([]*backorder.Backorder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		backorders = append(backorders, aggregate)
	}

	return backorders, nil
}
