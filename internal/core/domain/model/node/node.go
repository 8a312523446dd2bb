package node

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

const (
	// PerformanceScoreMin is the lowest possible rolling fulfillment-performance score.
	PerformanceScoreMin = 0.0
	// PerformanceScoreMax is the highest possible rolling fulfillment-performance score.
	PerformanceScoreMax = 100.0

	// defaultPerformanceScore is assigned to freshly onboarded nodes before any
	// delivery-outcome feedback arrives.
	defaultPerformanceScore = 100.0
)

// Domain errors for node operations.
var (
	// ErrNodeIsNotConstructed is returned when using an improperly initialized Node.
	ErrNodeIsNotConstructed = errors.New("Node must be created via NewNode constructor")
	// ErrCodeIsRequired is returned when attempting to create a node without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNameIsRequired is returned when attempting to create a node without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNoChannelCapability is returned when a node would end up serving neither B2C nor B2B.
	ErrNoChannelCapability = errs.NewValueIsInvalidError("node must serve at least one channel")
	// ErrDailyCapacityExhausted is returned when a node's daily order capacity is used up.
	ErrDailyCapacityExhausted = errors.New("daily order capacity exhausted")
)

// Channel is the trade channel a node is capable of fulfilling.
type Channel int

const (
	// ChannelB2C is the consumer trade channel.
	ChannelB2C Channel = iota + 1
	// ChannelB2B is the business trade channel.
	ChannelB2B
)

// ChannelFromString parses a trade channel from its wire representation.
// Returns an error for unknown values.
func ChannelFromString(value string) (Channel, error) {
	switch value {
	case "B2C":
		return ChannelB2C, nil
	case "B2B":
		return ChannelB2B, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("trade channel",
			fmt.Errorf("%q is not a valid trade channel", value))
	}
}

// Node represents a physical fulfillment location: a warehouse, a store,
// a dealer or a third-party logistics site. It is an aggregate root that owns
// the location's serviceability identity, channel capability flags, daily
// order capacity counters and the rolling fulfillment-performance score.
//
// Business rules:
//   - A node must have a valid UUID, a unique non-empty code and a name
//   - A node must be capable of at least one trade channel
//   - The daily order counter never exceeds the daily capacity
//   - The performance score stays within [0, 100]
//
// The daily counter is incremented through RegisterDayOrder during allocation
// and reset by the daily capacity-reset job. The performance score is consumed
// as input from downstream delivery-outcome feedback.
type Node struct {
	// id uniquely identifies the node
	id kernel.UUID
	// code is the operations-facing unique short code, e.g. "BOM-W1"
	code string
	// name is the human-readable node name
	name string
	// nodeType classifies the physical location
	nodeType Type
	// pincode is the origin postal code the node ships from
	pincode kernel.Pincode
	// geo is the optional geographic position used for proximity scoring
	geo *kernel.GeoPoint
	// active marks the node as onboarded and usable
	active bool
	// acceptingOrders marks the node as currently taking new orders
	acceptingOrders bool
	// b2c and b2b are the per-channel fulfillment capability flags
	b2c bool
	b2b bool
	// dailyCapacity is the maximum number of orders per day (0 = unlimited)
	dailyCapacity int
	// currentDayOrders is the number of orders routed to the node today
	currentDayOrders int
	// performanceScore is the rolling fulfillment-performance score (0-100)
	performanceScore float64
	// guard ensures the node was properly constructed
	guard guard.ConstructorGuard
}

// NewNode creates a freshly onboarded Node.
// The node starts active, accepting orders, B2C-capable, with a zero daily
// counter and the default performance score. Channel capabilities can be
// adjusted afterwards with SetChannelCapabilities.
//
// Parameters:
//   - id: Unique identifier for the node
//   - code: Operations-facing unique short code (must be non-empty)
//   - name: Human-readable name (must be non-empty)
//   - nodeType: Physical location classification
//   - pincode: Origin postal code the node ships from
//   - dailyCapacity: Maximum orders per day (must not be negative; 0 = unlimited)
//
// Returns:
//   - *Node: A fully initialized node
//   - error: Validation error if any parameter is invalid
func NewNode(
	id kernel.UUID,
	code string,
	name string,
	nodeType Type,
	pincode kernel.Pincode,
	dailyCapacity int,
) (*Node, error) {
	n := &Node{
		active:           true,
		acceptingOrders:  true,
		b2c:              true,
		performanceScore: defaultPerformanceScore,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setCode(code),
		n.setName(name),
		n.setType(nodeType),
		n.setPincode(pincode),
		n.setDailyCapacity(dailyCapacity),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNode reconstructs a Node aggregate from persistent storage,
// preserving counters, capability flags and the performance score exactly as
// persisted. The restored node behaves identically to one created through
// normal domain operations.
func RestoreNode(
	id kernel.UUID,
	code string,
	name string,
	nodeType Type,
	pincode kernel.Pincode,
	geo *kernel.GeoPoint,
	active bool,
	acceptingOrders bool,
	b2c bool,
	b2b bool,
	dailyCapacity int,
	currentDayOrders int,
	performanceScore float64,
) (*Node, error) {
	n := &Node{
		active:          active,
		acceptingOrders: acceptingOrders,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setCode(code),
		n.setName(name),
		n.setType(nodeType),
		n.setPincode(pincode),
		n.setDailyCapacity(dailyCapacity),
		n.SetChannelCapabilities(b2c, b2b),
		n.UpdatePerformanceScore(performanceScore),
	); err != nil {
		return nil, err
	}

	if geo != nil {
		if err := n.SetGeoLocation(*geo); err != nil {
			return nil, err
		}
	}

	if currentDayOrders < 0 || (n.dailyCapacity > 0 && currentDayOrders > n.dailyCapacity) {
		return nil, errs.NewValueIsOutOfRangeError(
			"current day orders", currentDayOrders, 0, n.dailyCapacity)
	}
	n.currentDayOrders = currentDayOrders

	return n, nil
}

// Validate ensures the Node instance was properly constructed through a constructor.
func (n *Node) Validate() error {
	if n == nil {
		return ErrNodeIsNotConstructed
	}
	return n.guard.Validate(ErrNodeIsNotConstructed)
}

// IsEqual compares two nodes by their unique identifiers.
func (n *Node) IsEqual(other *Node) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the node's unique identifier.
func (n *Node) ID() kernel.UUID {
	return n.id
}

// Code returns the operations-facing unique short code.
func (n *Node) Code() string {
	return n.code
}

// Name returns the human-readable node name.
func (n *Node) Name() string {
	return n.name
}

// NodeType returns the physical location classification.
func (n *Node) NodeType() Type {
	return n.nodeType
}

// Pincode returns the origin postal code the node ships from.
func (n *Node) Pincode() kernel.Pincode {
	return n.pincode
}

// GeoLocation returns the node's geographic position.
// Returns nil when no coordinates are configured.
func (n *Node) GeoLocation() *kernel.GeoPoint {
	return n.geo
}

// IsActive reports whether the node is onboarded and usable.
func (n *Node) IsActive() bool {
	return n.active
}

// IsAcceptingOrders reports whether the node currently takes new orders.
func (n *Node) IsAcceptingOrders() bool {
	return n.acceptingOrders
}

// DailyCapacity returns the maximum number of orders per day (0 = unlimited).
func (n *Node) DailyCapacity() int {
	return n.dailyCapacity
}

// CurrentDayOrders returns the number of orders routed to the node today.
func (n *Node) CurrentDayOrders() int {
	return n.currentDayOrders
}

// PerformanceScore returns the rolling fulfillment-performance score (0-100).
func (n *Node) PerformanceScore() float64 {
	return n.performanceScore
}

// ServesChannel reports whether the node is capable of fulfilling the given
// trade channel.
func (n *Node) ServesChannel(channel Channel) bool {
	switch channel {
	case ChannelB2C:
		return n.b2c
	case ChannelB2B:
		return n.b2b
	default:
		return false
	}
}

// IsEligible reports whether the node can be considered for allocation at all:
// active, accepting orders, capable of the requested channel, and with daily
// capacity remaining. Inventory sufficiency is checked separately.
func (n *Node) IsEligible(channel Channel) bool {
	return n.active && n.acceptingOrders && n.ServesChannel(channel) && n.HasDayCapacity()
}

// HasDayCapacity reports whether the node can take at least one more order today.
func (n *Node) HasDayCapacity() bool {
	return n.dailyCapacity == 0 || n.currentDayOrders < n.dailyCapacity
}

// RegisterDayOrder increments the daily order counter.
// Returns ErrDailyCapacityExhausted when the capacity is already used up.
//
// This is the in-memory aggregate mutation; the persistence layer applies the
// increment as an atomic conditional update so concurrent allocations cannot
// overshoot the capacity.
func (n *Node) RegisterDayOrder() error {
	if !n.HasDayCapacity() {
		return ErrDailyCapacityExhausted
	}

	n.currentDayOrders++
	return nil
}

// ResetDayOrders zeroes the daily order counter.
// Invoked by the daily capacity-reset job.
func (n *Node) ResetDayOrders() {
	n.currentDayOrders = 0
}

// SetChannelCapabilities updates the per-channel fulfillment capability flags.
// A node must remain capable of at least one channel.
func (n *Node) SetChannelCapabilities(b2c, b2b bool) error {
	if !b2c && !b2b {
		return ErrNoChannelCapability
	}

	n.b2c = b2c
	n.b2b = b2b
	return nil
}

// SetGeoLocation attaches geographic coordinates used for proximity scoring.
func (n *Node) SetGeoLocation(geo kernel.GeoPoint) error {
	if err := geo.Validate(); err != nil {
		return err
	}

	n.geo = &geo
	return nil
}

// UpdatePerformanceScore replaces the rolling fulfillment-performance score.
// The score is produced by downstream delivery-outcome feedback and must lie
// within [PerformanceScoreMin, PerformanceScoreMax].
func (n *Node) UpdatePerformanceScore(score float64) error {
	if score < PerformanceScoreMin || score > PerformanceScoreMax {
		return errs.NewValueIsOutOfRangeError(
			"performance score", score, PerformanceScoreMin, PerformanceScoreMax)
	}

	n.performanceScore = score
	return nil
}

// Deactivate takes the node out of service entirely.
func (n *Node) Deactivate() {
	n.active = false
}

// Activate returns the node to service.
func (n *Node) Activate() {
	n.active = true
}

// StopAcceptingOrders pauses new order intake without deactivating the node.
func (n *Node) StopAcceptingOrders() {
	n.acceptingOrders = false
}

// ResumeAcceptingOrders resumes new order intake.
func (n *Node) ResumeAcceptingOrders() {
	n.acceptingOrders = true
}

func (n *Node) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Node) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	n.code = code
	return nil
}

func (n *Node) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	n.name = name
	return nil
}

func (n *Node) setType(nodeType Type) error {
	if err := nodeType.Validate(); err != nil {
		return err
	}
	n.nodeType = nodeType
	return nil
}

func (n *Node) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	n.pincode = pincode
	return nil
}

func (n *Node) setDailyCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("daily capacity",
			fmt.Errorf("%d is negative", capacity))
	}
	n.dailyCapacity = capacity
	return nil
}
