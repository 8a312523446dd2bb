// Package node contains the FulfillmentNode aggregate and its supporting
// value objects. A fulfillment node is any location capable of shipping
// orders: a warehouse, a store, a dealer or a third-party logistics site.
//
// The aggregate owns the node's channel capability flags, the daily order
// capacity counter and the rolling fulfillment-performance score. The
// serviceability table (which destinations a node covers, and on what terms)
// is modeled by the Coverage value object.
package node
