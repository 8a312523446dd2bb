package noderepo

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrDayCapacityExhausted is returned when an atomic day-counter increment
// finds the node already at its daily capacity.
var ErrDayCapacityExhausted = errors.New("node day capacity exhausted")

// GormNodeRepository implements NodeRepository using GORM.
type GormNodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNodeRepository creates a new GORM node repository.
func NewGormNodeRepository(db *gorm.DB, tracker aggregateTracker) *GormNodeRepository {
	return &GormNodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new node to the database.
func (r *GormNodeRepository) Add(ctx context.Context, aggregate *node.Node) error {
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

// Update saves an existing node to the database.
func (r *GormNodeRepository) Update(ctx context.Context, aggregate *node.Node) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NodeDTO{}).
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

// Get retrieves a node by ID.
func (r *GormNodeRepository) Get(ctx context.Context, id kernel.UUID) (*node.Node, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("node", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a node by its operations-facing code.
func (r *GormNodeRepository) GetByCode(ctx context.Context, code string) (*node.Node, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("node code")
	}

	var dto NodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("node", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetServing retrieves every active, order-accepting node covering the given
// destination, paired with its coverage row, in priority-rank order.
func (r *GormNodeRepository) GetServing(
	ctx context.Context,
	destination kernel.Pincode,
) ([]ports.ServiceableNode, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	var coverageRows []CoverageDTO
	err := r.db.WithContext(ctx).
		Where("pincode = ?", destination.String()).
		Order("priority_rank, node_code").
		Find(&coverageRows).Error
	if err != nil {
		return nil, err
	}

	if len(coverageRows) == 0 {
		return nil, nil
	}

	codes := make([]string, 0, len(coverageRows))
	for _, row := range coverageRows {
		codes = append(codes, row.NodeCode)
	}

	var nodeRows []NodeDTO
	err = r.db.WithContext(ctx).
		Where("code IN ? AND active AND accepting_orders", codes).
		Find(&nodeRows).Error
	if err != nil {
		return nil, err
	}

	nodesByCode := make(map[string]*node.Node, len(nodeRows))
	for _, row := range nodeRows {
		aggregate, domainErr := toDomain(row)
		if domainErr != nil {
			return nil, domainErr
		}
		nodesByCode[row.Code] = aggregate
	}

	serving := make([]ports.ServiceableNode, 0, len(coverageRows))
	for _, row := range coverageRows {
		aggregate, ok := nodesByCode[row.NodeCode]
		if !ok {
			continue
		}
		coverage, domainErr := coverageToDomain(row)
		if domainErr != nil {
			return nil, domainErr
		}
		serving = append(serving, ports.ServiceableNode{Node: aggregate, Coverage: coverage})
	}

	return serving, nil
}

// AddCoverage saves a serviceability entry for a node.
func (r *GormNodeRepository) AddCoverage(ctx context.Context, nodeCode string, coverage node.Coverage) error {
	if nodeCode == "" {
		return errs.NewValueIsRequiredError("node code")
	}
	if err := coverage.Validate(); err != nil {
		return err
	}

	dto := coverageFromDomain(nodeCode, coverage)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// IncrementDayOrders atomically bumps a node's current-day order counter.
// The capacity check and the increment are one statement, so two concurrent
// allocations cannot both take the last slot.
func (r *GormNodeRepository) IncrementDayOrders(ctx context.Context, nodeCode string) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE nodes
		SET current_day_orders = current_day_orders + 1
		WHERE code = ?
		  AND (daily_capacity = 0 OR current_day_orders < daily_capacity)
	`, nodeCode)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDayCapacityExhausted
	}
	return nil
}

// DecrementDayOrders atomically undoes one IncrementDayOrders.
func (r *GormNodeRepository) DecrementDayOrders(ctx context.Context, nodeCode string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE nodes
		SET current_day_orders = current_day_orders - 1
		WHERE code = ? AND current_day_orders > 0
	`, nodeCode).Error
}

// ResetAllDayCounters zeroes the current-day order counter of every node.
func (r *GormNodeRepository) ResetAllDayCounters(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE nodes
		SET current_day_orders = 0
		WHERE current_day_orders <> 0
	`).Error
}
