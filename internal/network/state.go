// Package network models the load cycle of a view: a single fetch moves it
// from loading to either loaded or error, and it stays there.
package network

import (
	"context"
	"errors"

	"github.com/jengzang/velomap-backend-go/internal/models"
)

// Phase is the stage of a view's load cycle
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// ErrLoadFailed wraps every fetch failure surfaced to a view
var ErrLoadFailed = errors.New("failed to load")

// State is an immutable snapshot of the load cycle
type State struct {
	Phase   Phase
	Network *models.Network
	Err     error
}

// Event drives a transition
type Event interface {
	isEvent()
}

// FetchSucceeded carries a freshly fetched snapshot
type FetchSucceeded struct {
	Network *models.Network
}

// FetchFailed carries the reason a fetch failed
type FetchFailed struct {
	Err error
}

func (FetchSucceeded) isEvent() {}
func (FetchFailed) isEvent() {}

// Initial is the state of a freshly mounted view
func Initial() State {
	return State{Phase: PhaseLoading}
}

// Transition is the only way a State changes. Loaded and error states are
// terminal: later events are ignored, recovery means starting a new view.
func Transition(s State, e Event) State {
	if s.Phase != PhaseLoading {
		return s
	}

	switch ev := e.(type) {
	case FetchSucceeded:
		if ev.Network == nil {
			return State{Phase: PhaseError, Err: ErrLoadFailed}
		}
		return State{Phase: PhaseLoaded, Network: ev.Network}
	case FetchFailed:
		err := ev.Err
		if err == nil || !errors.Is(err, ErrLoadFailed) {
			err = errors.Join(ErrLoadFailed, err)
		}
		return State{Phase: PhaseError, Err: err}
	}
	return s
}

// Fetcher retrieves a network snapshot
type Fetcher interface {
	FetchNetwork(ctx context.Context) (*models.Network, error)
}

// Load runs one full load cycle against f
func Load(ctx context.Context, f Fetcher) State {
	s := Initial()

	network, err := f.FetchNetwork(ctx)
	if err != nil {
		return Transition(s, FetchFailed{Err: err})
	}
	return Transition(s, FetchSucceeded{Network: network})
}
