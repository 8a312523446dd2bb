package inventory

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// Inventory source names recorded in availability traces and allocations.
const (
	// SourceChannel marks availability computed from a channel-scoped record.
	SourceChannel = "CHANNEL"
	// SourcePool marks availability computed from the shared pool.
	SourcePool = "SHARED_POOL"
	// SourceNone marks the absence of any inventory record.
	SourceNone = "NONE"
)

// FallbackMode controls what happens when channel-aware inventory is enabled
// but no channel record exists for a (channel, node, product) triple.
type FallbackMode int

const (
	// UnknownFallbackMode represents an invalid or undefined fallback mode.
	UnknownFallbackMode FallbackMode = iota

	// SharedPool falls through to the global pool record.
	SharedPool

	// NoFallback treats a missing channel record as zero availability.
	NoFallback
)

// getValidFallbackModeStrings returns a map of only valid FallbackMode values.
func getValidFallbackModeStrings() map[FallbackMode]string {
	return map[FallbackMode]string{
		SharedPool: "SHARED_POOL",
		NoFallback: "NO_FALLBACK",
	}
}

// Validate checks if the FallbackMode value is valid.
func (m FallbackMode) Validate() error {
	if _, ok := getValidFallbackModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fallback mode",
			fmt.Errorf("%d is not a valid fallback mode", m))
	}
	return nil
}

// String returns the configuration name of the fallback mode.
func (m FallbackMode) String() string {
	if str, ok := getValidFallbackModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// FallbackModeFromString parses a configuration name into a FallbackMode.
func FallbackModeFromString(value string) (FallbackMode, error) {
	for mode, str := range getValidFallbackModeStrings() {
		if str == value {
			return mode, nil
		}
	}
	return UnknownFallbackMode, errs.NewValueIsInvalidErrorWithCause("fallback mode",
		fmt.Errorf("%q is not a valid fallback mode", value))
}

// PoolRecord is the durable shared-pool stock of one product at one node,
// as read from the inventory store.
type PoolRecord struct {
	Available int
	Reserved  int
}

// ChannelRecord is the durable channel-scoped stock of one product at one
// node for one sales channel.
type ChannelRecord struct {
	Allocated int
	Buffer    int
	Reserved  int
}

// ProductStock is everything known about one product at one node at snapshot
// time: the durable records plus the soft-reserved units read from the
// ephemeral cache. SoftReserved is keyed by channel code; the empty key holds
// the global (pool-level) soft reservation.
type ProductStock struct {
	Pool         *PoolRecord
	Channels     map[string]ChannelRecord
	SoftReserved map[string]int
}

// NodeSnapshot is the immutable availability picture of one node, captured
// once before any mutating call and passed by value through the decision
// path. Later code never re-reads the store mid-decision; the authoritative
// conflict check happens when reservations are committed.
type NodeSnapshot struct {
	NodeCode string
	Products map[kernel.UUID]ProductStock
}

// StockFor returns the product stock entry and whether any record exists.
func (s NodeSnapshot) StockFor(productID kernel.UUID) (ProductStock, bool) {
	stock, ok := s.Products[productID]
	return stock, ok
}

// StockRecord is the flat persistence form of one stock row.
// An empty Channel denotes the shared-pool record.
type StockRecord struct {
	NodeCode  string
	ProductID kernel.UUID
	Channel   string
	Available int
	Reserved  int
	Allocated int
	Buffer    int
}
