// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// NodeRepoFactory provides access to the node repository within a transaction.
	NodeRepoFactory interface {
		NodeRepository() ports.NodeRepository
	}

	// RuleRepoFactory provides access to the rule repository within a transaction.
	RuleRepoFactory interface {
		RuleRepository() ports.RuleRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// BackorderRepoFactory provides access to the backorder repository within a transaction.
	BackorderRepoFactory interface {
		BackorderRepository() ports.BackorderRepository
	}

	// PreorderRepoFactory provides access to the preorder repository within a transaction.
	PreorderRepoFactory interface {
		PreorderRepository() ports.PreorderRepository
	}

	// NodeUoW manages transactions for node-only operations.
	NodeUoW interface {
		TxManager
		NodeRepoFactory
	}

	// NodeUoWFactory creates new node unit of work instances.
	NodeUoWFactory interface {
		Create() NodeUoW
	}

	// RuleUoW manages transactions for rule-only operations.
	RuleUoW interface {
		TxManager
		RuleRepoFactory
	}

	// RuleUoWFactory creates new rule unit of work instances.
	RuleUoWFactory interface {
		Create() RuleUoW
	}

	// BackorderUoW manages transactions for backorder capture.
	BackorderUoW interface {
		TxManager
		BackorderRepoFactory
	}

	// BackorderUoWFactory creates new backorder unit of work instances.
	BackorderUoWFactory interface {
		Create() BackorderUoW
	}

	// PreorderUoW manages transactions for preorder operations.
	PreorderUoW interface {
		TxManager
		PreorderRepoFactory
	}

	// PreorderUoWFactory creates new preorder unit of work instances.
	PreorderUoWFactory interface {
		Create() PreorderUoW
	}

	// ConversionUoW manages transactions for preorder conversion: the
	// queue walk and every status transition commit together.
	ConversionUoW interface {
		TxManager
		PreorderRepoFactory
		StockRepoFactory
	}

	// ConversionUoWFactory creates new preorder conversion unit of work instances.
	ConversionUoWFactory interface {
		Create() ConversionUoW
	}

	// ReceiptUoW manages transactions for stock receipts and the backorder
	// drain they trigger: the incoming-stock write and every backorder
	// mutation commit or roll back together.
	ReceiptUoW interface {
		TxManager
		StockRepoFactory
		BackorderRepoFactory
	}

	// ReceiptUoWFactory creates new stock-receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	// OrchestrationUoW manages the mutating half of an Orchestrate call:
	// stock consumption, node day counters and backorder capture commit or
	// roll back as one transaction. The decision log stays outside it.
	OrchestrationUoW interface {
		TxManager
		NodeRepoFactory
		StockRepoFactory
		BackorderRepoFactory
	}

	// OrchestrationUoWFactory creates new orchestration unit of work instances.
	OrchestrationUoWFactory interface {
		Create() OrchestrationUoW
	}
)
