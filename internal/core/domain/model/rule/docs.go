// Package rule contains the RoutingRule aggregate: an ordered applicability
// predicate (channels, payment mode, order-value band, destination pincode
// patterns, node lists) combined with a node-selection strategy, a split
// policy and a backorder policy.
//
// Rules arrive as loosely-typed operations configuration; this package parses
// and validates them once at load time so the per-request match is cheap and
// type-safe.
package rule
