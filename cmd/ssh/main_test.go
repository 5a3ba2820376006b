package main

import (
	"sync"
	"testing"
	"time"
)

func TestSizeTrackerUpdates(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("getSize = %d, %d, %v", w, h, err)
	}
}

func TestWaitTimeout(t *testing.T) {
	var wg sync.WaitGroup
	if !waitTimeout(&wg, time.Second) {
		t.Error("empty group should finish immediately")
	}

	wg.Add(1)
	if waitTimeout(&wg, 10*time.Millisecond) {
		t.Error("running session should hit the timeout")
	}
	wg.Done()
}
