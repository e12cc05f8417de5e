package models

import "fmt"

type SortOrder string

const (
	SortOrderNone SortOrder = "none"
	SortOrderName SortOrder = "name"
	SortOrderSize SortOrder = "size"
)

// FanInMode selects how the consumer collects the producers' messages.
type FanInMode string

const (
	// FanInModeDrain joins every producer, then drains the buffer without blocking.
	FanInModeDrain FanInMode = "drain"
	// FanInModeRecv blocks on receive once per producer.
	FanInModeRecv FanInMode = "recv"
)

func ParseFanInMode(s string) (FanInMode, error) {
	switch s {
	case "drain":
		return FanInModeDrain, nil
	case "recv":
		return FanInModeRecv, nil
	default:
		return "", fmt.Errorf("invalid fan-in mode: %s", s)
	}
}

type CounterMode string

const (
	CounterModeMutex  CounterMode = "mutex"
	CounterModeAtomic CounterMode = "atomic"
)

func ParseCounterMode(s string) (CounterMode, error) {
	switch s {
	case "mutex":
		return CounterModeMutex, nil
	case "atomic":
		return CounterModeAtomic, nil
	default:
		return "", fmt.Errorf("invalid counter mode: %s", s)
	}
}

// DeltaKind names the per-unit increment of the counter demonstration.
type DeltaKind string

const (
	// DeltaKindOne adds 1 per unit.
	DeltaKindOne DeltaKind = "one"
	// DeltaKindIndex adds the unit's index i.
	DeltaKindIndex DeltaKind = "index"
)

func ParseDeltaKind(s string) (DeltaKind, error) {
	switch s {
	case "one":
		return DeltaKindOne, nil
	case "index":
		return DeltaKindIndex, nil
	default:
		return "", fmt.Errorf("invalid delta kind: %s", s)
	}
}

type PollState string

const (
	PollStateWaiting  PollState = "waiting"
	PollStateReceived PollState = "received"
	PollStateTimedOut PollState = "timed-out"
)
