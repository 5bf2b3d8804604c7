package model

import (
	"sync"
	"testing"
)

func TestStateManager_Lifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("new StateManager should be unfitted")
	}

	s.SetDimensions(3, 100)
	s.SetFitted()

	if !s.IsFitted() {
		t.Error("IsFitted() = false after SetFitted()")
	}
	if nFeatures, nSamples := s.GetDimensions(); nFeatures != 3 || nSamples != 100 {
		t.Errorf("GetDimensions() = (%d, %d), want (3, 100)", nFeatures, nSamples)
	}

	s.Reset()

	if s.IsFitted() {
		t.Error("IsFitted() = true after Reset()")
	}
	if nFeatures, nSamples := s.GetDimensions(); nFeatures != 0 || nSamples != 0 {
		t.Errorf("GetDimensions() = (%d, %d) after Reset(), want (0, 0)", nFeatures, nSamples)
	}
}

func TestStateManager_ConcurrentAccess(t *testing.T) {
	s := NewStateManager()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetFitted()
			s.SetDimensions(2, 10)
		}()
		go func() {
			defer wg.Done()
			s.IsFitted()
			s.GetDimensions()
		}()
	}
	wg.Wait()

	if !s.IsFitted() {
		t.Error("IsFitted() = false after concurrent SetFitted calls")
	}
}
