// Package backorderrepo provides data transfer objects and mapping functions
// for backorder persistence.
package backorderrepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BackorderDTO represents the database structure for persisting backorders.
// The composite index mirrors the drain order: open backorders of a product
// are consumed by ascending priority, then by age.
type BackorderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;index:idx_backorder_drain"`
	QtyRequested int
	QtyAvailable int
	QtyAllocated int
	Priority     int `gorm:"index:idx_backorder_drain"`
	Status       int `gorm:"index:idx_backorder_drain"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for backorders.
func (BackorderDTO) TableName() string {
	return "backorders"
}

// fromDomain converts a backorder domain aggregate to its database representation.
func fromDomain(aggregate *backorder.Backorder) BackorderDTO {
	return BackorderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		ProductID:    aggregate.ProductID().Bytes(),
		QtyRequested: aggregate.QtyRequested(),
		QtyAvailable: aggregate.QtyAvailable(),
		QtyAllocated: aggregate.QtyAllocated(),
		Priority:     aggregate.Priority(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a backorder domain aggregate.
func toDomain(dto BackorderDTO) (*backorder.Backorder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return backorder.RestoreBackorder(id, orderID, productID,
		dto.QtyRequested, dto.QtyAvailable, dto.QtyAllocated,
		dto.Priority, backorder.Status(dto.Status), dto.CreatedAt)
}
