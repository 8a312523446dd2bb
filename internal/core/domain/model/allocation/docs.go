// Package allocation contains the request and decision types of the
// orchestration engine: the AllocationRequest aggregate with its line items
// and operator overrides, the per-candidate NodeScore trace, and the
// immutable OrchestrationDecision recorded for every Orchestrate call.
package allocation
