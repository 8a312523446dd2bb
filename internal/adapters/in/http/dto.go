package http

import (
	"encoding/json"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one order line in an orchestration request.
type LineItemRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
}

// OrchestrationRequest is the body of POST /orchestrations.
type OrchestrationRequest struct {
	OrderID        string            `json:"order_id"`
	Destination    string            `json:"destination"`
	Channel        string            `json:"channel"`
	TradeChannel   string            `json:"trade_channel"`
	PaymentMode    string            `json:"payment_mode"`
	Items          []LineItemRequest `json:"items"`
	ForcedNodeCode string            `json:"forced_node_code,omitempty"`
	ForceSplit     *bool             `json:"force_split,omitempty"`
	ForceBackorder *bool             `json:"force_backorder,omitempty"`
	DryRun         bool              `json:"dry_run,omitempty"`
}

// OrchestrationResponse is the decision read model returned by POST /orchestrations.
type OrchestrationResponse struct {
	DecisionID    string                     `json:"decision_id"`
	OrderID       string                     `json:"order_id"`
	Status        string                     `json:"status"`
	AppliedRule   string                     `json:"applied_rule"`
	Strategy      string                     `json:"strategy,omitempty"`
	Assignments   []allocation.Assignment    `json:"assignments,omitempty"`
	Shortfalls    []allocation.ItemShortfall `json:"shortfalls,omitempty"`
	Candidates    []allocation.NodeScore     `json:"candidates,omitempty"`
	Warnings      []string                   `json:"warnings,omitempty"`
	FailureReason string                     `json:"failure_reason,omitempty"`
	LatencyMicros int64                      `json:"latency_micros"`
	DryRun        bool                       `json:"dry_run"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// NodeATP is per-node availability of one product.
type NodeATP struct {
	NodeCode  string `json:"node_code"`
	Available int    `json:"available"`
}

// ItemATP is the availability answer for one requested item.
type ItemATP struct {
	ProductID       string    `json:"product_id"`
	Requested       int       `json:"requested"`
	TotalAvailable  int       `json:"total_available"`
	Fulfillable     bool      `json:"fulfillable"`
	RecommendedNode string    `json:"recommended_node,omitempty"`
	Nodes           []NodeATP `json:"nodes"`
}

// BackorderResponse is one backorder in the listing.
type BackorderResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	ProductID         string    `json:"product_id"`
	QuantityRequested int       `json:"quantity_requested"`
	QuantityAvailable int       `json:"quantity_available"`
	QuantityAllocated int       `json:"quantity_allocated"`
	Priority          int       `json:"priority"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateBackorderRequest is the body of POST /backorders.
type CreateBackorderRequest struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Priority  int    `json:"priority"`
}

// OrchestrationLogResponse is one decision log entry in the listing.
type OrchestrationLogResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status"`
	AppliedRule   string          `json:"applied_rule"`
	Strategy      string          `json:"strategy,omitempty"`
	Assignments   json.RawMessage `json:"assignments,omitempty"`
	Shortfalls    json.RawMessage `json:"shortfalls,omitempty"`
	Candidates    json.RawMessage `json:"candidates,omitempty"`
	Warnings      json.RawMessage `json:"warnings,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	LatencyMicros int64           `json:"latency_micros"`
	DryRun        bool            `json:"dry_run"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CoverageRequest is one serviceability row of a node registration.
type CoverageRequest struct {
	Pincode        string  `json:"pincode"`
	CODAllowed     bool    `json:"cod_allowed"`
	PrepaidAllowed bool    `json:"prepaid_allowed"`
	PriorityRank   int     `json:"priority_rank"`
	TransitDays    int     `json:"transit_days"`
	ShippingCost   float64 `json:"shipping_cost"`
}

// RegisterNodeRequest is the body of POST /nodes.
type RegisterNodeRequest struct {
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	NodeType      string            `json:"node_type"`
	OriginPincode string            `json:"origin_pincode"`
	DailyCapacity int               `json:"daily_capacity"`
	B2C           bool              `json:"b2c"`
	B2B           bool              `json:"b2b"`
	Latitude      *float64          `json:"latitude,omitempty"`
	Longitude     *float64          `json:"longitude,omitempty"`
	Coverage      []CoverageRequest `json:"coverage"`
}

// NodeResponse is one fulfillment node in the listing.
type NodeResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	NodeType         string  `json:"node_type"`
	Pincode          string  `json:"pincode"`
	Active           bool    `json:"active"`
	AcceptingOrders  bool    `json:"accepting_orders"`
	DailyCapacity    int     `json:"daily_capacity"`
	CurrentDayOrders int     `json:"current_day_orders"`
	PerformanceScore float64 `json:"performance_score"`
}

// RegisterRuleRequest is the body of POST /rules.
type RegisterRuleRequest struct {
	Name             string           `json:"name"`
	Priority         int              `json:"priority"`
	Strategy         string           `json:"strategy"`
	Channels         []string         `json:"channels,omitempty"`
	PaymentMode      *string          `json:"payment_mode,omitempty"`
	MinOrderValue    *decimal.Decimal `json:"min_order_value,omitempty"`
	MaxOrderValue    *decimal.Decimal `json:"max_order_value,omitempty"`
	PincodePatterns  []string         `json:"pincode_patterns,omitempty"`
	TargetNode       string           `json:"target_node,omitempty"`
	PreferredNodes   []string         `json:"preferred_nodes,omitempty"`
	ExcludedNodes    []string         `json:"excluded_nodes,omitempty"`
	SplitAllowed     bool             `json:"split_allowed"`
	MaxSplits        int              `json:"max_splits,omitempty"`
	MinSplitValue    decimal.Decimal  `json:"min_split_value,omitempty"`
	BackorderAllowed bool             `json:"backorder_allowed"`
}

// StockReceiptRequest is the body of POST /stock-receipts.
type StockReceiptRequest struct {
	NodeCode  string `json:"node_code"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// StockReceiptResponse summarizes how one receipt was applied.
type StockReceiptResponse struct {
	NodeCode         string `json:"node_code"`
	ProductID        string `json:"product_id"`
	QtyReceived      int    `json:"qty_received"`
	QtyToBackorders  int    `json:"qty_to_backorders"`
	QtyToPool        int    `json:"qty_to_pool"`
	BackordersServed int    `json:"backorders_served"`
	BackordersClosed int    `json:"backorders_closed"`
}

// CreatePreorderRequest is the body of POST /preorders.
type CreatePreorderRequest struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

// HoldReservationRequest is the body of POST /reservations.
type HoldReservationRequest struct {
	NodeCode   string `json:"node_code"`
	ProductID  string `json:"product_id"`
	Channel    string `json:"channel,omitempty"`
	Quantity   int    `json:"quantity"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
