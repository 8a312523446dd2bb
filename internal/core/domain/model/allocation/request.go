package allocation

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for allocation requests.
var (
	// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
	// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrNoLineItems is returned when attempting to create a request without line items.
	ErrNoLineItems = errs.NewValueIsRequiredError("line items")
	// ErrChannelCodeIsRequired is returned when attempting to create a request without a channel code.
	ErrChannelCodeIsRequired = errs.NewValueIsRequiredError("channel code")
)

// LineItem is one product position of an allocation request.
// It is an immutable value object; unit price feeds split-value floors and
// unit weight feeds carrier rate quotes.
type LineItem struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	quantity     int
	unitPrice    decimal.Decimal
	unitWeightKg decimal.Decimal
	guard        guard.ConstructorGuard
}

// NewLineItem creates a line item for the given product.
// Quantity must be positive; unit price and unit weight must not be negative.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice, unitWeightKg decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setUnitWeightKg(unitWeightKg),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created via NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the product identifier.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested unit count.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// UnitWeightKg returns the per-unit shipping weight in kilograms.
func (i LineItem) UnitWeightKg() decimal.Decimal {
	return i.unitWeightKg
}

// LineValue returns quantity times unit price.
func (i LineItem) LineValue() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setUnitWeightKg(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit weight",
			fmt.Errorf("%s is negative", weight))
	}
	i.unitWeightKg = weight
	return nil
}

// Overrides are optional operator-supplied adjustments to a request.
// A forced node bypasses node selection; forced split/backorder flags replace
// the matched rule's policies; dry-run executes the full decision logic
// without any mutating side effect.
type Overrides struct {
	ForcedNodeCode string
	ForceSplit     *bool
	ForceBackorder *bool
	DryRun         bool
}

// Request is an order's demand for allocation: the destination, the sales
// channel, the payment mode and the line items to fulfill. It is the input
// to Orchestrate and is owned by the engine for the lifetime of order
// processing.
//
// The order value is derived from the line items; a request with no items or
// a non-positive derived value is invalid.
type Request struct {
	// orderID identifies the order being allocated
	orderID kernel.UUID
	// destination is the delivery postal code
	destination kernel.Pincode
	// channelCode is the sales channel identifier, e.g. "WEB" or "MARKETPLACE"
	channelCode string
	// tradeChannel classifies the request as B2C or B2B for node capability checks
	tradeChannel node.Channel
	// paymentMode is how the customer pays
	paymentMode PaymentMode
	// items are the product positions to fulfill
	items []LineItem
	// overrides are optional operator adjustments
	overrides Overrides
	// guard ensures the request was properly constructed
	guard guard.ConstructorGuard
}

// NewRequest creates an allocation request.
//
// Parameters:
//   - orderID: Unique order identifier
//   - destination: Delivery postal code
//   - channelCode: Sales channel identifier (must be non-empty)
//   - tradeChannel: B2C or B2B classification
//   - paymentMode: Prepaid or COD
//   - items: Line items to fulfill (must be non-empty, each valid)
//
// Returns:
//   - *Request: The validated request
//   - error: Validation error if any parameter is invalid
func NewRequest(
	orderID kernel.UUID,
	destination kernel.Pincode,
	channelCode string,
	tradeChannel node.Channel,
	paymentMode PaymentMode,
	items []LineItem,
) (*Request, error) {
	request := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setOrderID(orderID),
		request.setDestination(destination),
		request.setChannelCode(channelCode),
		request.setTradeChannel(tradeChannel),
		request.setPaymentMode(paymentMode),
		request.setItems(items),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate ensures the Request instance was properly constructed through NewRequest.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// OrderID returns the order identifier.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// Destination returns the delivery postal code.
func (r *Request) Destination() kernel.Pincode {
	return r.destination
}

// ChannelCode returns the sales channel identifier.
func (r *Request) ChannelCode() string {
	return r.channelCode
}

// TradeChannel returns the B2C/B2B classification.
func (r *Request) TradeChannel() node.Channel {
	return r.tradeChannel
}

// PaymentMode returns how the customer pays.
func (r *Request) PaymentMode() PaymentMode {
	return r.paymentMode
}

// Items returns the line items to fulfill.
// The returned slice must not be mutated by callers.
func (r *Request) Items() []LineItem {
	return r.items
}

// Overrides returns the operator-supplied adjustments.
func (r *Request) Overrides() Overrides {
	return r.overrides
}

// SetOverrides attaches operator-supplied adjustments to the request.
func (r *Request) SetOverrides(overrides Overrides) {
	r.overrides = overrides
}

// IsDryRun reports whether the request must not produce mutating side effects.
func (r *Request) IsDryRun() bool {
	return r.overrides.DryRun
}

// OrderValue returns the total monetary value of the request,
// derived from the line items.
func (r *Request) OrderValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.items {
		total = total.Add(item.LineValue())
	}
	return total
}

// TotalWeightKg returns the total shipping weight of the request in kilograms.
func (r *Request) TotalWeightKg() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.items {
		total = total.Add(item.UnitWeightKg().Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}
	return total
}

// TotalUnits returns the total requested unit count across all line items.
func (r *Request) TotalUnits() int {
	total := 0
	for _, item := range r.items {
		total += item.Quantity()
	}
	return total
}

// ProductIDs returns the distinct product identifiers of the request,
// in line-item order.
func (r *Request) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(r.items))
	ids := make([]kernel.UUID, 0, len(r.items))
	for _, item := range r.items {
		if _, ok := seen[item.ProductID()]; ok {
			continue
		}
		seen[item.ProductID()] = struct{}{}
		ids = append(ids, item.ProductID())
	}
	return ids
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setDestination(destination kernel.Pincode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Request) setChannelCode(channelCode string) error {
	if channelCode == "" {
		return ErrChannelCodeIsRequired
	}
	r.channelCode = channelCode
	return nil
}

func (r *Request) setTradeChannel(tradeChannel node.Channel) error {
	if tradeChannel != node.ChannelB2C && tradeChannel != node.ChannelB2B {
		return errs.NewValueIsInvalidErrorWithCause("trade channel",
			fmt.Errorf("%d is not a valid trade channel", tradeChannel))
	}
	r.tradeChannel = tradeChannel
	return nil
}

func (r *Request) setPaymentMode(paymentMode PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}
	r.paymentMode = paymentMode
	return nil
}

func (r *Request) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	r.items = items
	return nil
}
