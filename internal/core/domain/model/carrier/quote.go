package carrier

import "github.com/shopspring/decimal"

// Package describes the shippable parcel attributes sent to the rate-quote
// provider. Dimensions are optional; a zero dimension means "not measured".
type Package struct {
	WeightKg decimal.Decimal
	LengthCm int
	WidthCm  int
	HeightCm int
}

// Quote is one carrier option returned by the rate-quote provider for a lane.
// Quotes are external advisory data; they are consumed as-is and never
// persisted outside the decision trace.
type Quote struct {
	CarrierCode   string
	CarrierName   string
	TotalCost     decimal.Decimal
	CostBreakdown map[string]decimal.Decimal

	// TransitDaysMin and TransitDaysMax bound the estimated delivery window.
	TransitDaysMin int
	TransitDaysMax int

	// OnTimePerformance is the provider-reported on-time delivery share [0,1].
	OnTimePerformance float64

	// CODSupported reports whether the carrier collects cash on delivery.
	CODSupported bool
}
