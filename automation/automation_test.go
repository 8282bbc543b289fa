package automation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntilSignalsWhenFound(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	var calls atomic.Int32
	found := pollUntil(done, time.Millisecond, 100, func() bool {
		return calls.Add(1) == 3
	})

	select {
	case <-found:
	case <-time.After(2 * time.Second):
		t.Fatal("check was never reported as found")
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestPollUntilStopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	var calls atomic.Int32
	found := pollUntil(done, 5*time.Millisecond, 1000, func() bool {
		calls.Add(1)
		return false
	})

	time.Sleep(30 * time.Millisecond)
	close(done)
	time.Sleep(20 * time.Millisecond)
	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, stopped, calls.Load())
	select {
	case <-found:
		t.Fatal("found closed although check never succeeded")
	default:
	}
}
