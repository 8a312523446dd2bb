// Package noderepo provides data transfer objects and mapping functions for
// fulfillment node persistence. It implements the repository pattern for the
// node aggregate and its serviceability table, handling conversion between
// domain entities and database representations.
package noderepo

import (
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"

	"github.com/google/uuid"
)

// NodeDTO represents the database structure for persisting node aggregates.
// Indexed by code because the allocation path addresses nodes by their
// operations-facing code, not by ID.
type NodeDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code             string    `gorm:"uniqueIndex;size:32"`
	Name             string
	NodeType         int
	Pincode          string `gorm:"size:6"`
	Latitude         *float64
	Longitude        *float64
	Active           bool `gorm:"index"`
	AcceptingOrders  bool
	B2C              bool
	B2B              bool
	DailyCapacity    int
	CurrentDayOrders int
	PerformanceScore float64
}

// TableName specifies the database table name for node entities.
func (NodeDTO) TableName() string {
	return "nodes"
}

// CoverageDTO represents one serviceability row: a destination pincode a node
// ships to, with the per-lane attributes the scorer reads.
type CoverageDTO struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	NodeCode       string `gorm:"index:idx_coverage_node;index:idx_coverage_lane,unique;size:32"`
	Pincode        string `gorm:"index:idx_coverage_pincode;index:idx_coverage_lane,unique;size:6"`
	CODAllowed     bool
	PrepaidAllowed bool
	PriorityRank   int
	TransitDays    int
	ShippingCost   float64
}

// TableName specifies the database table name for serviceability entries.
func (CoverageDTO) TableName() string {
	return "node_coverage"
}

// fromDomain converts a node domain aggregate to its database representation.
func fromDomain(aggregate *node.Node) NodeDTO {
	var latitude, longitude *float64
	if geo := aggregate.GeoLocation(); geo != nil {
		lat, lon := geo.Latitude(), geo.Longitude()
		latitude, longitude = &lat, &lon
	}

	return NodeDTO{
		ID:               aggregate.ID().Bytes(),
		Code:             aggregate.Code(),
		Name:             aggregate.Name(),
		NodeType:         int(aggregate.NodeType()),
		Pincode:          aggregate.Pincode().String(),
		Latitude:         latitude,
		Longitude:        longitude,
		Active:           aggregate.IsActive(),
		AcceptingOrders:  aggregate.IsAcceptingOrders(),
		B2C:              aggregate.ServesChannel(node.ChannelB2C),
		B2B:              aggregate.ServesChannel(node.ChannelB2B),
		DailyCapacity:    aggregate.DailyCapacity(),
		CurrentDayOrders: aggregate.CurrentDayOrders(),
		PerformanceScore: aggregate.PerformanceScore(),
	}
}

// toDomain converts a database DTO to a node domain aggregate using RestoreNode.
func toDomain(dto NodeDTO) (*node.Node, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	return node.RestoreNode(id, dto.Code, dto.Name, node.Type(dto.NodeType), pincode,
		geo, dto.Active, dto.AcceptingOrders, dto.B2C, dto.B2B,
		dto.DailyCapacity, dto.CurrentDayOrders, dto.PerformanceScore)
}

// coverageFromDomain converts a serviceability entry to its database row.
func coverageFromDomain(nodeCode string, coverage node.Coverage) CoverageDTO {
	return CoverageDTO{
		NodeCode:       nodeCode,
		Pincode:        coverage.Pincode().String(),
		CODAllowed:     coverage.CODAllowed(),
		PrepaidAllowed: coverage.PrepaidAllowed(),
		PriorityRank:   coverage.PriorityRank(),
		TransitDays:    coverage.TransitDays(),
		ShippingCost:   coverage.ShippingCost(),
	}
}

// coverageToDomain converts a database row to a serviceability value object.
func coverageToDomain(dto CoverageDTO) (node.Coverage, error) {
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return node.Coverage{}, err
	}

	return node.NewCoverage(pincode, dto.CODAllowed, dto.PrepaidAllowed,
		dto.PriorityRank, dto.TransitDays, dto.ShippingCost)
}
