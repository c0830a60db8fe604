// Package engine orchestrates recognition passes: the per-item
// resolve/preprocess/recognize pipeline, the bounded-concurrency batch
// scheduler, and the future-based async bridge.
//
// # Concurrency model
//
// Batch items run on independent goroutines under a counting admission gate
// sized to MaxConcurrency (hardware parallelism when zero). Each worker
// performs a fully synchronous pipeline for its item and writes exactly one
// output slot, fixed at dispatch time, so output order always matches input
// order no matter which items finish first. The only shared mutable state
// is the per-item slot (written once, by its own worker) and an atomic
// failure counter. The batch call is a join barrier: it returns only after
// every slot is filled.
//
// There are no timeouts and no cancellation at this layer; a hang in the
// underlying recognition capability is accepted as an external-dependency
// risk.
package engine
