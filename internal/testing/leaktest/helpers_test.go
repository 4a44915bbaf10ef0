package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	t.Cleanup(func() { close(done) })

	checker.Check(2)
}

func TestCheckNoGoroutineLeak_WaitsForStragglers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(5 * time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestSettle(t *testing.T) {
	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	_, ok := settle(0, 20*time.Millisecond)
	assert.False(t, ok)
}
