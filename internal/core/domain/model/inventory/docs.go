// Package inventory contains the availability snapshot value objects.
// Snapshots are captured once per orchestration, immediately after the reads,
// and passed by value through the decision path so no later code depends on
// storage state that a concurrent commit may have invalidated.
package inventory
