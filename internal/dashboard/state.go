package dashboard

import (
	"sync"
	"time"

	"coindash/pkg/coinlore"
)

// State is the dashboard's application state. It is a value: update
// functions return a new State and never modify the receiver's slices.
type State struct {
	Coins      []coinlore.Coin
	Exchanges  []coinlore.Exchange
	LastUpdate time.Time
}

// WithData replaces both datasets. Nil inputs become empty sequences.
func (s State) WithData(coins []coinlore.Coin, exchanges []coinlore.Exchange) State {
	if coins == nil {
		coins = []coinlore.Coin{}
	}
	if exchanges == nil {
		exchanges = []coinlore.Exchange{}
	}
	s.Coins = coins
	s.Exchanges = exchanges
	return s
}

func (s State) WithLastUpdate(t time.Time) State {
	s.LastUpdate = t
	return s
}

// Store holds the current State. Writers replace it whole, so a reader
// never observes coins from one load next to exchanges from another.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{}.WithData(nil, nil)}
}

func (s *Store) Load() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the current state under the write lock and
// returns the stored result.
func (s *Store) Update(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}
