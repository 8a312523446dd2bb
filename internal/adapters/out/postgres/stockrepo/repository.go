package stockrepo

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// SnapshotNode reads the durable stock rows of the given products at one node
// into an immutable snapshot.
func (r *GormStockRepository) SnapshotNode(
	ctx context.Context,
	nodeCode string,
	productIDs []kernel.UUID,
) (inventory.NodeSnapshot, error) {
	if nodeCode == "" {
		return inventory.NodeSnapshot{}, errs.NewValueIsRequiredError("node code")
	}

	ids := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		ids = append(ids, productID.Bytes())
	}

	var rows []StockDTO
	err := r.db.WithContext(ctx).
		Where("node_code = ? AND product_id IN ?", nodeCode, ids).
		Find(&rows).Error
	if err != nil {
		return inventory.NodeSnapshot{}, err
	}

	snapshot := inventory.NodeSnapshot{
		NodeCode: nodeCode,
		Products: make(map[kernel.UUID]inventory.ProductStock, len(productIDs)),
	}

	for _, row := range rows {
		productID, idErr := kernel.UUIDFromBytes(row.ProductID[:])
		if idErr != nil {
			return inventory.NodeSnapshot{}, idErr
		}

		stock := snapshot.Products[productID]
		if row.Channel == "" {
			stock.Pool = &inventory.PoolRecord{
				Available: row.Available,
				Reserved:  row.Reserved,
			}
		} else {
			if stock.Channels == nil {
				stock.Channels = make(map[string]inventory.ChannelRecord, 2)
			}
			stock.Channels[row.Channel] = inventory.ChannelRecord{
				Allocated: row.Allocated,
				Buffer:    row.Buffer,
				Reserved:  row.Reserved,
			}
		}
		snapshot.Products[productID] = stock
	}

	return snapshot, nil
}

// Upsert writes one stock row, replacing the quantities of an existing
// (node, product, channel) row.
func (r *GormStockRepository) Upsert(ctx context.Context, record inventory.StockRecord) error {
	if record.NodeCode == "" {
		return errs.NewValueIsRequiredError("node code")
	}
	if err := record.ProductID.Validate(); err != nil {
		return err
	}

	dto := fromRecord(record)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "node_code"}, {Name: "product_id"}, {Name: "channel"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"available", "reserved", "allocated", "buffer"}),
	}).Create(&dto).Error
}

// ConsumeAvailable atomically moves qty units from available to reserved.
// The availability condition and the move are one statement; a row with fewer
// units than requested is left untouched and ErrInsufficientStock is returned.
// Channel rows measure availability as allocated minus buffer minus reserved.
func (r *GormStockRepository) ConsumeAvailable(
	ctx context.Context,
	nodeCode string,
	productID kernel.UUID,
	channel string,
	qty int,
) error {
	var result *gorm.DB
	if channel == "" {
		result = r.db.WithContext(ctx).Exec(`
			UPDATE stock_records
			SET available = available - ?, reserved = reserved + ?
			WHERE node_code = ? AND product_id = ? AND channel = ''
			  AND available >= ?
		`, qty, qty, nodeCode, productID.Bytes(), qty)
	} else {
		result = r.db.WithContext(ctx).Exec(`
			UPDATE stock_records
			SET reserved = reserved + ?
			WHERE node_code = ? AND product_id = ? AND channel = ?
			  AND allocated - buffer - reserved >= ?
		`, qty, nodeCode, productID.Bytes(), channel, qty)
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrInsufficientStock
	}
	return nil
}

// RestoreAvailable atomically undoes one ConsumeAvailable.
func (r *GormStockRepository) RestoreAvailable(
	ctx context.Context,
	nodeCode string,
	productID kernel.UUID,
	channel string,
	qty int,
) error {
	if channel == "" {
		return r.db.WithContext(ctx).Exec(`
			UPDATE stock_records
			SET available = available + ?, reserved = reserved - ?
			WHERE node_code = ? AND product_id = ? AND channel = ''
		`, qty, qty, nodeCode, productID.Bytes()).Error
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE stock_records
		SET reserved = reserved - ?
		WHERE node_code = ? AND product_id = ? AND channel = ?
	`, qty, nodeCode, productID.Bytes(), channel).Error
}

// AddIncoming atomically adds received units to the shared-pool row, creating
// it if absent.
func (r *GormStockRepository) AddIncoming(
	ctx context.Context,
	nodeCode string,
	productID kernel.UUID,
	qty int,
) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO stock_records (node_code, product_id, channel, available, reserved, allocated, buffer)
		VALUES (?, ?, '', ?, 0, 0, 0)
		ON CONFLICT (node_code, product_id, channel)
		DO UPDATE SET available = stock_records.available + EXCLUDED.available
	`, nodeCode, productID.Bytes(), qty).Error
}

// TotalAvailable sums the net shared-pool availability of a product across
// every node.
func (r *GormStockRepository) TotalAvailable(ctx context.Context, productID kernel.UUID) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(available - reserved), 0)
		FROM stock_records
		WHERE product_id = ? AND channel = ''
	`, productID.Bytes()).Scan(&total).Error
	return total, err
}
