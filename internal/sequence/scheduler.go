package sequence

import (
	"context"
	"sync"
	"time"
)

// Scheduler hands out periodic callbacks. The returned cancel func stops
// further calls and may be called any number of times.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs each callback on its own goroutine driven by a time.Ticker.
type TickerScheduler struct {
	wg sync.WaitGroup
}

// NewTickerScheduler returns a scheduler backed by real time.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every calls fn every d until cancel is called. cancel does not wait for the
// goroutine to exit, so it is safe to call from inside fn; use Wait for that.
func (s *TickerScheduler) Every(d time.Duration, fn func()) func() {
	ctx, cancel := context.WithCancel(context.Background())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()
	return cancel
}

// Wait blocks until every callback goroutine has exited.
func (s *TickerScheduler) Wait() {
	s.wg.Wait()
}
