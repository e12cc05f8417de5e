// Package channel implements an unbounded multi-producer, single-consumer
// channel with blocking and non-blocking receive.
//
// # Architecture Overview
//
//	┌──────────┐  Send   ┌─────────────────────────────┐  Recv / TryRecv  ┌──────────┐
//	│ Sender 1 │ ──────► │                             │ ───────────────► │          │
//	└──────────┘         │  FIFO buffer (unbounded)    │                  │ Receiver │
//	┌──────────┐  Send   │  [m1] [m2] [m3] ...         │  Drain           │          │
//	│ Sender 2 │ ──────► │                             │ ───────────────► │          │
//	└──────────┘         └─────────────────────────────┘                  └──────────┘
//	  (Clone)                   senders refcount
//
// Sends never block. Messages from one sender are received in send order;
// across senders the interleaving is whatever order the sends took the lock.
//
// # End of stream
//
// Every Sender, including clones, must be closed. When the last one closes,
// Recv returns the remaining buffered messages and then a ChannelClosedError
// instead of blocking forever.
//
// # Receiving
//
//   - Recv(ctx) suspends the caller until a message or end-of-stream.
//   - TryRecv() returns at once; (zero, false, nil) means "empty, try later".
//   - Drain() takes everything buffered right now.
//   - Poll(ctx, rx, opts) loops on TryRecv with backoff pacing and a bounded
//     number of attempts:
//
//	┌─────────┐  message   ┌──────────┐
//	│ Waiting │ ─────────► │ Received │
//	└────┬────┘            └──────────┘
//	     │ attempts or time exhausted
//	     ▼
//	┌──────────┐
//	│ TimedOut │  (TimeoutError)
//	└──────────┘
package channel
