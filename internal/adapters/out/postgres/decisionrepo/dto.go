// Package decisionrepo persists the orchestration log. Decision records are
// immutable and written outside the business transaction, so the log keeps
// FAILED entries whose mutations were rolled back.
package decisionrepo

import (
	"encoding/json"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DecisionDTO represents the database structure for one orchestration log
// entry. The structured trace parts are stored as JSON documents; they are
// read back whole, never queried field by field.
type DecisionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Status        string    `gorm:"size:16;index"`
	AppliedRule   string    `gorm:"size:64"`
	Strategy      string    `gorm:"size:20"`
	Assignments   datatypes.JSON
	Shortfalls    datatypes.JSON
	Candidates    datatypes.JSON
	Warnings      datatypes.JSON
	FailureReason string
	LatencyMicros int64
	DryRun        bool
	CreatedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for orchestration log entries.
func (DecisionDTO) TableName() string {
	return "orchestration_decisions"
}

// fromDomain converts a decision aggregate to its database representation.
func fromDomain(aggregate *allocation.Decision) (DecisionDTO, error) {
	assignments, err := json.Marshal(aggregate.Assignments())
	if err != nil {
		return DecisionDTO{}, err
	}
	shortfalls, err := json.Marshal(aggregate.Shortfalls())
	if err != nil {
		return DecisionDTO{}, err
	}
	candidates, err := json.Marshal(aggregate.Candidates())
	if err != nil {
		return DecisionDTO{}, err
	}
	warnings, err := json.Marshal(aggregate.Warnings())
	if err != nil {
		return DecisionDTO{}, err
	}

	return DecisionDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Status:        aggregate.Status().String(),
		AppliedRule:   aggregate.AppliedRule(),
		Strategy:      aggregate.Strategy(),
		Assignments:   datatypes.JSON(assignments),
		Shortfalls:    datatypes.JSON(shortfalls),
		Candidates:    datatypes.JSON(candidates),
		Warnings:      datatypes.JSON(warnings),
		FailureReason: aggregate.FailureReason(),
		LatencyMicros: aggregate.Latency().Microseconds(),
		DryRun:        aggregate.IsDryRun(),
		CreatedAt:     aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a decision aggregate using RestoreDecision.
func toDomain(dto DecisionDTO) (*allocation.Decision, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := allocation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignments []allocation.Assignment
	if err = json.Unmarshal(dto.Assignments, &assignments); err != nil {
		return nil, err
	}
	var shortfalls []allocation.ItemShortfall
	if err = json.Unmarshal(dto.Shortfalls, &shortfalls); err != nil {
		return nil, err
	}
	var candidates []allocation.NodeScore
	if err = json.Unmarshal(dto.Candidates, &candidates); err != nil {
		return nil, err
	}
	var warnings []string
	if err = json.Unmarshal(dto.Warnings, &warnings); err != nil {
		return nil, err
	}

	return allocation.RestoreDecision(id, orderID, status,
		dto.AppliedRule, dto.Strategy, assignments, shortfalls, candidates,
		warnings, dto.FailureReason,
		time.Duration(dto.LatencyMicros)*time.Microsecond, dto.DryRun, dto.CreatedAt)
}
