package sequence

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fastScheduler shortens every interval so real-time tests finish quickly.
type fastScheduler struct {
	*TickerScheduler
}

func (f fastScheduler) Every(_ time.Duration, fn func()) func() {
	return f.TickerScheduler.Every(2*time.Millisecond, fn)
}

func TestTickerSchedulerCancel(t *testing.T) {
	s := NewTickerScheduler()
	var calls atomic.Int32
	cancel := s.Every(time.Millisecond, func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	cancel()
	s.Wait()

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestRunnerWithTickerSchedulerCompletes(t *testing.T) {
	s := fastScheduler{NewTickerScheduler()}
	done := make(chan Reason, 1)
	r := newRunner(t, []Step{{Name: "a", Seconds: 3}, {Name: "b", Seconds: 2}},
		WithScheduler(s),
		WithOnComplete(func(reason Reason) { done <- reason }))

	require.NoError(t, r.Start())
	select {
	case reason := <-done:
		assert.Equal(t, ReasonTimeout, reason)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not complete")
	}
	s.Wait()
	assert.Equal(t, 5, r.Elapsed())
}

func TestRunnerWithTickerSchedulerPauseAndClose(t *testing.T) {
	s := fastScheduler{NewTickerScheduler()}
	r := newRunner(t, []Step{{Name: "long", Seconds: 10000}}, WithScheduler(s))

	require.NoError(t, r.Start())
	require.Eventually(t, func() bool { return r.Elapsed() > 0 }, time.Second, time.Millisecond)
	require.NoError(t, r.Pause())
	s.Wait()
	paused := r.Elapsed()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, paused, r.Elapsed())

	require.NoError(t, r.Start())
	r.Close()
	r.Close()
	s.Wait()
}
