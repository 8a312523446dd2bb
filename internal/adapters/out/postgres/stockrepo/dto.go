// Package stockrepo provides persistence for durable inventory records: the
// shared-pool rows and the channel-scoped rows of every node. All stock
// mutations are single conditional statements so concurrent allocations can
// never oversell a row.
package stockrepo

import (
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"

	"github.com/google/uuid"
)

// StockDTO represents one inventory row. An empty Channel denotes the
// shared-pool record; channel rows carry allocation and buffer quantities
// instead of a plain available count.
type StockDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	NodeCode  string    `gorm:"index:idx_stock_key,unique;size:32"`
	ProductID uuid.UUID `gorm:"type:uuid;index:idx_stock_key,unique;index:idx_stock_product"`
	Channel   string    `gorm:"index:idx_stock_key,unique;size:32"`
	Available int
	Reserved  int
	Allocated int
	Buffer    int
}

// TableName specifies the database table name for inventory rows.
func (StockDTO) TableName() string {
	return "stock_records"
}

// fromRecord converts a flat stock record to its database row.
func fromRecord(record inventory.StockRecord) StockDTO {
	return StockDTO{
		NodeCode:  record.NodeCode,
		ProductID: record.ProductID.Bytes(),
		Channel:   record.Channel,
		Available: record.Available,
		Reserved:  record.Reserved,
		Allocated: record.Allocated,
		Buffer:    record.Buffer,
	}
}
