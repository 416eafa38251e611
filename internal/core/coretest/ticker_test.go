package coretest

import (
	"testing"
	"time"
)

func TestManualTickerDeliversOnDemand(t *testing.T) {
	m := NewManualTicker()
	if m.Tick(10 * time.Millisecond) {
		t.Fatal("tick taken with no consumer")
	}

	got := make(chan time.Time, 1)
	go func() { got <- <-m.C() }()
	if !m.Tick(2 * time.Second) {
		t.Fatal("tick not taken")
	}
	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not receive the tick")
	}
}

func TestManualTickerStop(t *testing.T) {
	tk := Factory(time.Second)
	m, ok := tk.(*ManualTicker)
	if !ok {
		t.Fatalf("Factory returned %T", tk)
	}
	if m.Stopped() {
		t.Fatal("stopped before Stop")
	}
	m.Stop()
	m.Stop()
	if !m.Stopped() {
		t.Fatal("not stopped after Stop")
	}
}
