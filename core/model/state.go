// Package model provides core abstractions shared by all sigo estimators.
//
// The central piece is StateManager, which tracks whether a model has been
// fitted and the dimensions of the data it was fitted on. Estimators hold a
// StateManager by composition rather than embedding, keeping their exported
// surface small:
//
//	type MyModel struct {
//	    state *model.StateManager
//	    // model-specific fields
//	}
//
//	func (m *MyModel) Fit(ds *dataset.Dataset) error {
//	    m.state.Reset()
//	    // ... training logic ...
//	    m.state.SetFitted()
//	    return nil
//	}
//
// Calling Reset at the top of Fit is what makes refitting idempotent: every
// Fit starts from the same initial state regardless of prior training.
package model

import (
	"sync"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
type StateManager struct {
	mu     sync.RWMutex
	fitted bool

	nFeatures int
	nSamples  int
}

// NewStateManager creates a new StateManager in the unfitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset returns the state to unfitted and clears recorded dimensions.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// SetDimensions records the number of features and samples seen during fitting.
func (s *StateManager) SetDimensions(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}
