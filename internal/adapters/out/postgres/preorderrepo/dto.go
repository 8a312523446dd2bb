// Package preorderrepo provides data transfer objects and mapping functions
// for preorder queue persistence.
package preorderrepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PreorderDTO represents the database structure for persisting preorders.
// The unique (product_id, position) index enforces the per-product queue.
type PreorderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index:idx_preorder_queue,unique"`
	Quantity    int
	Position    int `gorm:"index:idx_preorder_queue,unique"`
	Status      int `gorm:"index"`
	ConvertedAt *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for preorders.
func (PreorderDTO) TableName() string {
	return "preorders"
}

// fromDomain converts a preorder domain aggregate to its database representation.
func fromDomain(aggregate *backorder.Preorder) PreorderDTO {
	return PreorderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		Quantity:    aggregate.Quantity(),
		Position:    aggregate.Position(),
		Status:      int(aggregate.Status()),
		ConvertedAt: aggregate.ConvertedAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a preorder domain aggregate.
func toDomain(dto PreorderDTO) (*backorder.Preorder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return backorder.RestorePreorder(id, customerID, productID,
		dto.Quantity, dto.Position, backorder.PreorderStatus(dto.Status),
		dto.ConvertedAt, dto.CreatedAt)
}
