// Package services implements the concurrency demonstrations invoked by the
// CLI.
//
// Each service composes the primitives of pkg/spawn, pkg/guard and
// pkg/channel, writes human-readable progress lines to the writer it was
// built with, and logs through zap.S().Named("<service>").
//
// # Service Dependency Graph
//
//	CLI commands
//	    │
//	    ▼
//	Services Layer
//	    ├── Detached ──► spawn.Detach
//	    ├── Joined ────► spawn.Spawn, Handle.Join
//	    ├── Counter ───► spawn.Spawn, spawn.JoinAll, guard.Guarded, guard.AtomicCounter
//	    ├── Handoff ───► spawn.Detach, channel.New, Receiver.Recv
//	    ├── Polling ───► spawn.Detach, channel.Poll
//	    └── FanIn ─────► spawn.Spawn, Sender.Clone, Receiver.Recv / Drain
//
// # Detached
//
// Spawns a printer unit without keeping a handle and prints the launcher's
// lines concurrently. The order of the two streams is unspecified, and the
// spawned unit may still be printing, or not have printed at all, when Run
// returns.
//
// # Joined
//
// Moves a slice into a spawned unit, joins it, then prints the launcher's
// lines. Every spawned line is printed before any launcher line.
//
// # Counter
//
// RunParallelIncrements(ctx, n, delta) spawns n units that add delta(i) to a
// guarded counter, joins them all and returns the exact sum of the deltas.
// A panic inside the critical section poisons the counter and the whole
// aggregate fails with both the WorkFailureError and the LockPoisonedError.
// RunAtomicIncrements does the same over an atomic counter.
//
// # Handoff and Polling
//
// A detached producer sends one message. Handoff blocks on Recv; Polling runs
// the bounded poll loop and reports its final state:
//
//	┌─────────┐  message   ┌──────────┐
//	│ Waiting │ ─────────► │ Received │
//	└────┬────┘            └──────────┘
//	     │ attempts or time exhausted
//	     ▼
//	┌──────────┐
//	│ TimedOut │
//	└──────────┘
//
// # FanIn
//
// Spawns one producer per value, each owning a clone of the sender.
//   - drain: join every producer, then Drain the buffered values
//   - recv:  Recv exactly once per producer, then join the producers
//
// Both collect exactly the values sent; the sum does not depend on arrival
// order.
//
// # Thread Safety
//
// Output lines coming from several units are serialized through a guarded
// writer, so a line is never split by another unit's line.
package services
