// Package backorder holds deferred-demand aggregates: backorders captured
// when an order cannot be fulfilled immediately, and preorders queued before
// a product becomes sellable. Both are drained FIFO as stock arrives.
package backorder
