package rulerepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRuleRepository implements RuleRepository using GORM.
type GormRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRuleRepository creates a new GORM rule repository.
func NewGormRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormRuleRepository {
	return &GormRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rule to the database.
func (r *GormRuleRepository) Add(ctx context.Context, aggregate *rule.Rule) error {
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

// Update saves an existing rule to the database.
func (r *GormRuleRepository) Update(ctx context.Context, aggregate *rule.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).
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

// Get retrieves a rule by ID.
func (r *GormRuleRepository) Get(ctx context.Context, id kernel.UUID) (*rule.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active rule sorted by ascending priority.
func (r *GormRuleRepository) GetAllActive(ctx context.Context) ([]*rule.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("priority, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*rule.Rule, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		rules = append(rules, aggregate)
	}

	return rules, nil
}
