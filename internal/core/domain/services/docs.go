// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the allocation engine. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AvailabilityChecker: available-to-promise computation over node snapshots
//   - RuleMatcher: predicate matching and priority ordering of routing rules
//   - NodeScorer: multi-factor ranking of candidate fulfillment nodes
//   - SplitPlanner: greedy all-or-nothing partitioning of orders across nodes
//   - CarrierSelector: advisory carrier proposals with legacy lane fallback
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
