// Package spawn launches units of work on their own goroutines, either joined
// through a completion handle or detached.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                            Launcher                              │
//	│                                                                  │
//	│   Spawn(ctx, work) ──────────► *Handle[T] ──── Join() ──► (T, err)│
//	│         │                          ▲                             │
//	│         ▼                          │ Result{Data, Err}           │
//	│   ┌───────────┐   buffered(1)   ┌──┴────────┐                    │
//	│   │ goroutine │ ──────────────► │  result   │                    │
//	│   │  work()   │                 │  channel  │                    │
//	│   └───────────┘                 └───────────┘                    │
//	│                                                                  │
//	│   Detach(ctx, name, fn) ──► goroutine ──► failures ──► zap       │
//	└──────────────────────────────────────────────────────────────────┘
//
// # Joined Spawn
//
// Spawn returns a Handle immediately. The unit runs on a new goroutine and
// stores exactly one Result in the handle's buffered channel:
//
//   - work returned (v, nil):  Join returns (v, nil)
//   - work returned an error:  Join returns a WorkFailureError wrapping it
//   - work panicked:           Join returns a WorkFailureError holding the
//     panic value and the stack of the unit
//
// The send of the result happens before Join's receive completes, so every
// write performed by the unit is visible to the code following Join.
//
// A handle is single-use. The first Join consumes it; any further Join
// returns a HandleConsumedError instead of blocking or returning a stale
// value. Done() is closed once the result is stored and can be used in a
// select before joining:
//
//	h := spawn.Spawn(ctx, func(ctx context.Context) (int, error) {
//	    return 2 + 3, nil
//	})
//
//	select {
//	case <-h.Done():
//	case <-time.After(time.Second):
//	}
//	v, err := h.Join() // 5, nil
//
// JoinAll joins a slice of handles and combines every failure with multierr.
//
// # Detached Spawn
//
// Detach is fire-and-forget: no handle is returned and the caller never learns
// the outcome. Because of that, failures are routed to a logger (zap.S() by
// default, see WithDetachLogger) instead of being silently lost.
//
// Hazards:
//   - Output of the detached unit interleaves with the caller's output in an
//     unspecified order.
//   - The launcher does not wait. When it returns and the process exits the
//     unit may be cut short and its failure never logged.
//
// # Cancellation
//
// The context passed to Spawn or Detach is handed to the work function as is.
// Nothing in this package cancels it: once started, a unit runs to completion
// or failure.
package spawn
