package preorderrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPreorderRepository implements PreorderRepository using GORM.
type GormPreorderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPreorderRepository creates a new GORM preorder repository.
func NewGormPreorderRepository(db *gorm.DB, tracker aggregateTracker) *GormPreorderRepository {
	return &GormPreorderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new preorder to the database.
func (r *GormPreorderRepository) Add(ctx context.Context, aggregate *backorder.Preorder) error {
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

// Update saves an existing preorder to the database.
func (r *GormPreorderRepository) Update(ctx context.Context, aggregate *backorder.Preorder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PreorderDTO{}).
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

// Get retrieves a preorder by ID.
func (r *GormPreorderRepository) Get(ctx context.Context, id kernel.UUID) (*backorder.Preorder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PreorderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("preorder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextPosition returns the next queue position for a product. Converted
// preorders keep their positions, so positions are never reused.
func (r *GormPreorderRepository) NextPosition(ctx context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var maxPosition int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(position), 0)
		FROM preorders
		WHERE product_id = ?
	`, productID.Bytes()).Scan(&maxPosition).Error
	if err != nil {
		return 0, err
	}

	return maxPosition + 1, nil
}

// GetActiveByProduct retrieves every active preorder for a product in queue
// position order.
func (r *GormPreorderRepository) GetActiveByProduct(
	ctx context.Context,
	productID kernel.UUID,
) ([]*backorder.Preorder, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PreorderDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID.Bytes(), int(backorder.PreorderActive)).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	preorders := make([]*backorder.Preorder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		preorders = append(preorders, aggregate)
	}

	return preorders, nil
}

// GetProductsWithActive lists the products that currently have at least one
// active preorder.
func (r *GormPreorderRepository) GetProductsWithActive(ctx context.Context) ([]kernel.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT product_id
		FROM preorders
		WHERE status = ?
	`, int(backorder.PreorderActive)).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	products := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		products = append(products, productID)
	}

	return products, nil
}
