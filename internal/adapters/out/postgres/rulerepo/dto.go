// Package rulerepo provides data transfer objects and mapping functions for
// routing rule persistence. Rule predicates arrive from configuration as
// string collections and nullable columns; parsing them into validated value
// objects happens once at load time, in toDomain.
package rulerepo

import (
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RuleDTO represents the database structure for persisting routing rules.
// Collection-valued predicate parts use native postgres arrays; nullable
// columns express unset predicate parts, which match anything.
type RuleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"uniqueIndex;size:64"`
	Priority int       `gorm:"index"`
	Active   bool      `gorm:"index"`
	Strategy string    `gorm:"size:20"`

	Channels        pq.StringArray   `gorm:"type:text[]"`
	PaymentMode     *string          `gorm:"size:10"`
	MinOrderValue   *decimal.Decimal `gorm:"type:numeric(14,2)"`
	MaxOrderValue   *decimal.Decimal `gorm:"type:numeric(14,2)"`
	PincodePatterns pq.StringArray   `gorm:"type:text[]"`
	TargetNode      string           `gorm:"size:32"`
	PreferredNodes  pq.StringArray   `gorm:"type:text[]"`
	ExcludedNodes   pq.StringArray   `gorm:"type:text[]"`

	SplitAllowed     bool
	MaxSplits        int
	MinSplitValue    decimal.Decimal `gorm:"type:numeric(14,2)"`
	BackorderAllowed bool
}

// TableName specifies the database table name for routing rules.
func (RuleDTO) TableName() string {
	return "routing_rules"
}

// fromDomain converts a rule domain aggregate to its database representation.
func fromDomain(aggregate *rule.Rule) RuleDTO {
	predicate := aggregate.Predicate()

	var paymentMode *string
	if mode := predicate.PaymentMode(); mode != nil {
		value := mode.String()
		paymentMode = &value
	}

	patterns := make(pq.StringArray, 0, len(predicate.Patterns()))
	for _, pattern := range predicate.Patterns() {
		patterns = append(patterns, pattern.String())
	}

	return RuleDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Priority: aggregate.Priority(),
		Active:   aggregate.IsActive(),
		Strategy: aggregate.Strategy().String(),

		Channels:        pq.StringArray(predicate.Channels()),
		PaymentMode:     paymentMode,
		MinOrderValue:   predicate.MinOrderValue(),
		MaxOrderValue:   predicate.MaxOrderValue(),
		PincodePatterns: patterns,
		TargetNode:      predicate.TargetNode(),
		PreferredNodes:  pq.StringArray(predicate.PreferredNodes()),
		ExcludedNodes:   pq.StringArray(predicate.ExcludedNodes()),

		SplitAllowed:     aggregate.SplitPolicy().Allowed(),
		MaxSplits:        aggregate.SplitPolicy().MaxSplits(),
		MinSplitValue:    aggregate.SplitPolicy().MinSplitValue(),
		BackorderAllowed: aggregate.BackorderPolicy().Allowed(),
	}
}

// toDomain converts a database DTO to a rule domain aggregate. Malformed
// predicate configuration surfaces here, at load time, not per request.
func toDomain(dto RuleDTO) (*rule.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	strategy, err := rule.StrategyFromString(dto.Strategy)
	if err != nil {
		return nil, err
	}

	var paymentMode *allocation.PaymentMode
	if dto.PaymentMode != nil {
		mode, modeErr := allocation.PaymentModeFromString(*dto.PaymentMode)
		if modeErr != nil {
			return nil, modeErr
		}
		paymentMode = &mode
	}

	patterns := make([]rule.PincodePattern, 0, len(dto.PincodePatterns))
	for _, raw := range dto.PincodePatterns {
		pattern, patternErr := rule.ParsePincodePattern(raw)
		if patternErr != nil {
			return nil, patternErr
		}
		patterns = append(patterns, pattern)
	}

	predicate, err := rule.NewPredicate([]string(dto.Channels), paymentMode,
		dto.MinOrderValue, dto.MaxOrderValue, patterns,
		dto.TargetNode, []string(dto.PreferredNodes), []string(dto.ExcludedNodes))
	if err != nil {
		return nil, err
	}

	splitPolicy, err := rule.NewSplitPolicy(dto.SplitAllowed, dto.MaxSplits, dto.MinSplitValue)
	if err != nil {
		return nil, err
	}

	return rule.RestoreRule(id, dto.Name, dto.Priority, dto.Active, strategy,
		predicate, splitPolicy, rule.NewBackorderPolicy(dto.BackorderAllowed))
}
