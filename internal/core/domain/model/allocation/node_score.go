package allocation

// ItemAvailability is the availability observed for one line item at one node
// while scoring. Source names where the quantity came from: "CHANNEL" for a
// channel-scoped inventory record, "SHARED_POOL" for the global pool, "NONE"
// when the node carries no inventory record for the product.
type ItemAvailability struct {
	ProductID string `json:"product_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
	Source    string `json:"source"`
}

// NodeScore is the scoring result for one candidate node. It is a plain value
// captured into the decision trace, so every considered candidate remains
// auditable, not just the winner.
type NodeScore struct {
	NodeCode         string  `json:"node_code"`
	ProximityScore   float64 `json:"proximity_score"`
	InventoryScore   float64 `json:"inventory_score"`
	CostScore        float64 `json:"cost_score"`
	SLAScore         float64 `json:"sla_score"`
	CapacityScore    float64 `json:"capacity_score"`
	PerformanceScore float64 `json:"performance_score"`
	PreferredBonus   float64 `json:"preferred_bonus"`
	TotalScore       float64 `json:"total_score"`

	// CanFulfillAll is true when the node has sufficient availability for
	// every line item of the request.
	CanFulfillAll bool `json:"can_fulfill_all"`

	// Items holds the per-line-item availability observed at scoring time,
	// in request line-item order.
	Items []ItemAvailability `json:"items"`
}

// AvailableFor returns the availability observed for the given product,
// or zero when the node carries no record for it.
func (s NodeScore) AvailableFor(productID string) int {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item.Available
		}
	}
	return 0
}
