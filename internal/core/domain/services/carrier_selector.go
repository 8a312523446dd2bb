package services

import (
	"context"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// RateQuoteProvider returns ranked carrier quotes for a lane. Implementations
// may perform network I/O and must honor the caller's context deadline.
type RateQuoteProvider interface {
	QuoteLane(
		ctx context.Context,
		origin kernel.Pincode,
		destination kernel.Pincode,
		paymentMode allocation.PaymentMode,
		pkg carrier.Package,
	) ([]carrier.Quote, error)
}

// LaneTable reads the legacy static lane table for an origin-destination
// pair, ordered by rate ascending.
type LaneTable interface {
	LanesFor(ctx context.Context, origin, destination kernel.Pincode) ([]carrier.LaneRate, error)
}

// CarrierSelector proposes a carrier for one assignment. Carrier assignment
// is advisory metadata: any failure of the rate-quote provider degrades to
// the legacy lane table, and an empty lane table degrades to no proposal,
// never to a failed allocation.
type CarrierSelector struct {
	quotes RateQuoteProvider
	lanes  LaneTable
}

// NewCarrierSelector creates a CarrierSelector. The rate-quote provider may
// be nil, in which case every selection goes straight to the lane table.
func NewCarrierSelector(quotes RateQuoteProvider, lanes LaneTable) CarrierSelector {
	return CarrierSelector{quotes: quotes, lanes: lanes}
}

// SelectCarrier proposes a carrier for a shipment from origin to destination.
// It returns the proposal (nil when no carrier could be found) and advisory
// warnings describing any degradation taken along the way.
func (s CarrierSelector) SelectCarrier(
	ctx context.Context,
	origin kernel.Pincode,
	destination kernel.Pincode,
	paymentMode allocation.PaymentMode,
	pkg carrier.Package,
	strategy carrier.SelectionStrategy,
) (*allocation.CarrierInfo, []string) {
	var warnings []string

	if s.quotes != nil {
		quotes, err := s.quotes.QuoteLane(ctx, origin, destination, paymentMode, pkg)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("rate-quote provider failed for lane %s-%s: %v; using legacy lane table",
					origin, destination, err))
		} else if selected := selectQuote(quotes, paymentMode, strategy); selected != nil {
			return &allocation.CarrierInfo{
				Code:           selected.CarrierCode,
				Name:           selected.CarrierName,
				Mode:           allocation.CarrierModeRateQuote,
				TotalCost:      selected.TotalCost,
				CostBreakdown:  selected.CostBreakdown,
				TransitDaysMin: selected.TransitDaysMin,
				TransitDaysMax: selected.TransitDaysMax,
			}, warnings
		}
	}

	info, laneWarnings := s.selectLegacyLane(ctx, origin, destination, paymentMode)
	return info, append(warnings, laneWarnings...)
}

func (s CarrierSelector) selectLegacyLane(
	ctx context.Context,
	origin kernel.Pincode,
	destination kernel.Pincode,
	paymentMode allocation.PaymentMode,
) (*allocation.CarrierInfo, []string) {
	lanes, err := s.lanes.LanesFor(ctx, origin, destination)
	if err != nil {
		return nil, []string{fmt.Sprintf("lane table lookup failed for lane %s-%s: %v; no carrier proposed",
			origin, destination, err)}
	}

	for _, lane := range lanes {
		if paymentMode == allocation.COD && !lane.CODAvailable() {
			continue
		}
		return &allocation.CarrierInfo{
			Code:           lane.CarrierCode(),
			Name:           lane.CarrierName(),
			Mode:           allocation.CarrierModeLegacyLane,
			TotalCost:      lane.Rate(),
			TransitDaysMin: lane.TransitDays(),
			TransitDaysMax: lane.TransitDays(),
		}, nil
	}

	return nil, []string{fmt.Sprintf("no carrier serves lane %s-%s", origin, destination)}
}

// selectQuote applies the selection strategy over the COD-eligible quotes.
func selectQuote(
	quotes []carrier.Quote,
	paymentMode allocation.PaymentMode,
	strategy carrier.SelectionStrategy,
) *carrier.Quote {
	var best *carrier.Quote
	for i := range quotes {
		quote := &quotes[i]
		if paymentMode == allocation.COD && !quote.CODSupported {
			continue
		}
		if best == nil || quoteBeats(quote, best, strategy) {
			best = quote
		}
	}
	return best
}

func quoteBeats(quote, best *carrier.Quote, strategy carrier.SelectionStrategy) bool {
	switch strategy {
	case carrier.FastestFirst:
		return quote.TransitDaysMax < best.TransitDaysMax
	case carrier.BestSLA:
		return quote.OnTimePerformance > best.OnTimePerformance
	case carrier.Balanced:
		return balancedScore(quote) > balancedScore(best)
	default:
		return quote.TotalCost.LessThan(best.TotalCost)
	}
}

// balancedScore blends cost, speed and reliability. Cost dominates, with
// transit days as a per-day penalty and on-time performance as a discount.
func balancedScore(quote *carrier.Quote) float64 {
	cost, _ := quote.TotalCost.Float64()
	return -cost - 10.0*float64(quote.TransitDaysMax) + 50.0*quote.OnTimePerformance
}
