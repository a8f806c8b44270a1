// Package app provides application lifecycle management, shared state
// and events.
package app

import (
	"sync"

	"ggraph/internal/series"
)

// State holds what the windows share: the loaded series and where
// they came from.
type State struct {
	mu sync.RWMutex

	// Input files, in load order.
	InputPaths []string

	// The loaded data.
	Set *series.Set

	listeners map[EventType][]EventListener
}

// EventType identifies application events.
type EventType int

const (
	EventDataLoaded EventType = iota
	EventViewChanged
	EventColorsChanged
	EventImageSaved
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		Set:       series.NewSet(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// AddInput records a loaded input file.
func (s *State) AddInput(path string) {
	s.mu.Lock()
	s.InputPaths = append(s.InputPaths, path)
	s.mu.Unlock()
	s.Emit(EventDataLoaded, path)
}
