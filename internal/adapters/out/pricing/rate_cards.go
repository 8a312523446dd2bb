// Package pricing computes carrier quotes from configured rate cards. It is
// the primary quote source for carrier proposal; the legacy lane table is the
// fallback when no rate card serves a lane.
package pricing

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RateCardDTO represents one carrier rate card: a flat pricing formula valid
// for every lane the carrier serves.
type RateCardDTO struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	CarrierCode       string          `gorm:"uniqueIndex;size:32"`
	CarrierName       string          `gorm:"size:64"`
	BaseRate          decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerKgRate         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CODSurcharge      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CODSupported      bool
	TransitDaysMin    int
	TransitDaysMax    int
	OnTimePerformance float64
	Active            bool `gorm:"index"`
}

// TableName specifies the database table name for carrier rate cards.
func (RateCardDTO) TableName() string {
	return "carrier_rate_cards"
}

// RateCardQuoteProvider implements the carrier selector's RateQuoteProvider
// by pricing the shipment against every active rate card.
type RateCardQuoteProvider struct {
	db *gorm.DB
}

// NewRateCardQuoteProvider creates a rate-card backed quote provider.
func NewRateCardQuoteProvider(db *gorm.DB) *RateCardQuoteProvider {
	return &RateCardQuoteProvider{db: db}
}

// QuoteLane prices the package against every active rate card and returns one
// quote per carrier. Lane arguments are accepted for interface fidelity; rate
// cards price by weight, not by lane.
func (p *RateCardQuoteProvider) QuoteLane(
	ctx context.Context,
	_ kernel.Pincode,
	_ kernel.Pincode,
	paymentMode allocation.PaymentMode,
	pkg carrier.Package,
) ([]carrier.Quote, error) {
	var cards []RateCardDTO
	err := p.db.WithContext(ctx).
		Where("active").
		Order("carrier_code").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]carrier.Quote, 0, len(cards))
	for _, card := range cards {
		weightCost := card.PerKgRate.Mul(pkg.WeightKg)
		breakdown := map[string]decimal.Decimal{
			"base":   card.BaseRate,
			"weight": weightCost,
		}

		total := card.BaseRate.Add(weightCost)
		if paymentMode == allocation.COD && card.CODSupported {
			breakdown["cod"] = card.CODSurcharge
			total = total.Add(card.CODSurcharge)
		}

		quotes = append(quotes, carrier.Quote{
			CarrierCode:       card.CarrierCode,
			CarrierName:       card.CarrierName,
			TotalCost:         total,
			CostBreakdown:     breakdown,
			TransitDaysMin:    card.TransitDaysMin,
			TransitDaysMax:    card.TransitDaysMax,
			OnTimePerformance: card.OnTimePerformance,
			CODSupported:      card.CODSupported,
		})
	}

	return quotes, nil
}
