package view

import (
	"slices"
	"time"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

var statusNames = [...]string{"idle", "loading", "ready", "failed"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Trigger tells what started a load.
type Trigger int

const (
	TriggerInitial Trigger = iota
	TriggerPoll
	TriggerManual
)

func (t Trigger) String() string {
	switch t {
	case TriggerInitial:
		return "initial"
	case TriggerPoll:
		return "poll"
	case TriggerManual:
		return "manual"
	}
	return "unknown"
}

// State is the presentation state of one view. Items is replaced wholesale on
// every successful load and kept untouched on failure.
type State[T any, A any] struct {
	Status       Status    `json:"status"`
	Items        []T       `json:"items"`
	Aggregate    A         `json:"aggregate"`
	Error        string    `json:"error,omitempty"`
	IsRefreshing bool      `json:"isRefreshing"`
	LastUpdated  time.Time `json:"lastUpdated"`
	Generation   uint64    `json:"generation"`
	Loaded       bool      `json:"loaded"`
}

func (s State[T, A]) clone() State[T, A] {
	s.Items = slices.Clone(s.Items)
	return s
}

// LoadStart enters Loading and opens a new generation. Any load started
// before it becomes stale. Background loads over already loaded data raise
// the refreshing flag.
func LoadStart[T, A any](s State[T, A], trigger Trigger) State[T, A] {
	s.Generation++
	s.Status = StatusLoading
	s.IsRefreshing = trigger != TriggerInitial && s.Loaded
	return s
}

// LoadSuccess applies the result of generation gen. ok is false and s is
// returned unchanged when gen is stale.
func LoadSuccess[T, A any](s State[T, A], gen uint64, items []T, agg A, now time.Time) (State[T, A], bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Status = StatusReady
	s.Items = items
	s.Aggregate = agg
	s.Error = ""
	s.LastUpdated = now
	s.Loaded = true
	return s, true
}

// LoadFailure records a failed load of generation gen. Items, Aggregate and
// LastUpdated keep their last good values.
func LoadFailure[T, A any](s State[T, A], gen uint64, message string) (State[T, A], bool) {
	if gen != s.Generation {
		return s, false
	}
	s.Status = StatusFailed
	s.Error = message
	return s, true
}

// LoadCancelled abandons generation gen without a result: the view goes back
// to the status of its last settled load and drops the refreshing flag.
// A stale gen leaves s unchanged.
func LoadCancelled[T, A any](s State[T, A], gen uint64) State[T, A] {
	if gen != s.Generation {
		return s
	}
	switch {
	case s.Error != "":
		s.Status = StatusFailed
	case s.Loaded:
		s.Status = StatusReady
	default:
		s.Status = StatusIdle
	}
	s.IsRefreshing = false
	return s
}

// ClearRefreshing drops the refreshing flag raised by generation gen. A newer
// load owns the flag and is left alone.
func ClearRefreshing[T, A any](s State[T, A], gen uint64) State[T, A] {
	if gen == s.Generation {
		s.IsRefreshing = false
	}
	return s
}
