package decisionrepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDecisionRepository implements DecisionRepository using GORM.
// It takes the root connection, never a transaction handle: log writes must
// survive business rollbacks.
type GormDecisionRepository struct {
	db *gorm.DB
}

// NewGormDecisionRepository creates a new GORM decision repository.
func NewGormDecisionRepository(db *gorm.DB) *GormDecisionRepository {
	return &GormDecisionRepository{db: db}
}

// Add appends one immutable decision record to the log.
func (r *GormDecisionRepository) Add(ctx context.Context, aggregate *allocation.Decision) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a decision record by ID.
func (r *GormDecisionRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Decision, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DecisionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("decision", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves every decision recorded for an order, newest first.
func (r *GormDecisionRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*allocation.Decision, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DecisionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	decisions := make([]*allocation.Decision, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		decisions = append(decisions, aggregate)
	}

	return decisions, nil
}
