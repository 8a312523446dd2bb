package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrRegisterNodeCommandIsNotConstructed = errors.New(
	"RegisterNodeCommand must be created via NewRegisterNodeCommand constructor",
)

// CoverageInput is one serviceability row of a node registration.
type CoverageInput struct {
	Pincode        string
	CODAllowed     bool
	PrepaidAllowed bool
	PriorityRank   int
	TransitDays    int
	ShippingCost   float64
}

// RegisterNodeCommand represents operations onboarding a new fulfillment
// node together with its serviceability table.
type RegisterNodeCommand struct { //nolint:recvcheck //using for validation
	aggregate *node.Node
	coverage  []node.Coverage

	guard guard.ConstructorGuard
}

// NewRegisterNodeCommand creates a node registration command. The node and
// every coverage row are validated here.
func NewRegisterNodeCommand(
	nodeID kernel.UUID,
	code string,
	name string,
	nodeType node.Type,
	originPincode string,
	dailyCapacity int,
	b2c bool,
	b2b bool,
	geo *kernel.GeoPoint,
	coverageInputs []CoverageInput,
) (RegisterNodeCommand, error) {
	origin, err := kernel.NewPincode(originPincode)
	if err != nil {
		return RegisterNodeCommand{}, err
	}

	aggregate, err := node.NewNode(nodeID, code, name, nodeType, origin, dailyCapacity)
	if err != nil {
		return RegisterNodeCommand{}, err
	}
	if err := aggregate.SetChannelCapabilities(b2c, b2b); err != nil {
		return RegisterNodeCommand{}, err
	}
	if geo != nil {
		if err := aggregate.SetGeoLocation(*geo); err != nil {
			return RegisterNodeCommand{}, err
		}
	}

	coverage := make([]node.Coverage, 0, len(coverageInputs))
	for _, input := range coverageInputs {
		destination, err := kernel.NewPincode(input.Pincode)
		if err != nil {
			return RegisterNodeCommand{}, err
		}
		entry, err := node.NewCoverage(destination, input.CODAllowed, input.PrepaidAllowed,
			input.PriorityRank, input.TransitDays, input.ShippingCost)
		if err != nil {
			return RegisterNodeCommand{}, err
		}
		coverage = append(coverage, entry)
	}

	return RegisterNodeCommand{
		aggregate: aggregate,
		coverage:  coverage,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterNodeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterNodeCommandIsNotConstructed)
}

// Node returns the validated node aggregate.
func (c RegisterNodeCommand) Node() *node.Node {
	return c.aggregate
}

// Coverage returns the validated serviceability rows.
func (c RegisterNodeCommand) Coverage() []node.Coverage {
	return c.coverage
}
