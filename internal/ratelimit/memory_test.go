package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestMemoryLimiter_RejectsAfterLimit(t *testing.T) {
	l := NewMemoryLimiter(DefaultLimit, DefaultWindow, zap.NewNop())
	defer l.Stop()

	for i := 0; i < DefaultLimit; i++ {
		require.True(t, l.AllowAt("10.0.0.1", epoch.Add(time.Duration(i)*time.Second)), "request %d", i+1)
	}

	assert.False(t, l.AllowAt("10.0.0.1", epoch.Add(30*time.Minute)))
	assert.Equal(t, DefaultLimit, l.windowCount("10.0.0.1"), "rejections must not increment the count")
}

func TestMemoryLimiter_ResetsAfterWindowExpiry(t *testing.T) {
	l := NewMemoryLimiter(DefaultLimit, DefaultWindow, zap.NewNop())
	defer l.Stop()

	for i := 0; i < DefaultLimit; i++ {
		l.AllowAt("10.0.0.1", epoch)
	}
	require.False(t, l.AllowAt("10.0.0.1", epoch.Add(time.Hour)), "window is still open at exactly one hour")

	assert.True(t, l.AllowAt("10.0.0.1", epoch.Add(time.Hour+time.Second)))
	assert.Equal(t, 1, l.windowCount("10.0.0.1"))
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute, zap.NewNop())
	defer l.Stop()

	assert.True(t, l.AllowAt("a", epoch))
	assert.False(t, l.AllowAt("a", epoch))
	assert.True(t, l.AllowAt("b", epoch))
	assert.Equal(t, 2, l.Len())
}

func TestMemoryLimiter_AllowUsesClock(t *testing.T) {
	now := epoch
	l := NewMemoryLimiter(1, time.Minute, zap.NewNop(), WithClock(func() time.Time { return now }))
	defer l.Stop()

	ok, err := l.Allow(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.Allow(context.Background(), "a")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = l.Allow(context.Background(), "a")
	assert.True(t, ok)
}

func TestMemoryLimiter_SweepRemovesOnlyExpiredWindows(t *testing.T) {
	l := NewMemoryLimiter(10, time.Hour, zap.NewNop())
	defer l.Stop()

	l.AllowAt("old", epoch)
	l.AllowAt("fresh", epoch.Add(50*time.Minute))

	removed := l.Sweep(epoch.Add(61 * time.Minute))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.windowCount("old"))
	assert.Equal(t, 1, l.windowCount("fresh"))
}

func TestMemoryLimiter_BackgroundSweep(t *testing.T) {
	var mu sync.Mutex
	now := epoch
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	l := NewMemoryLimiter(10, time.Minute, zap.NewNop(),
		WithClock(clock),
		WithCleanupFrequency(5*time.Millisecond))
	defer l.Stop()

	_, _ = l.Allow(context.Background(), "a")
	require.Equal(t, 1, l.Len())

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemoryLimiter_ConcurrentRequestsNeverExceedLimit(t *testing.T) {
	l := NewMemoryLimiter(DefaultLimit, DefaultWindow, zap.NewNop())
	defer l.Stop()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 250; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := l.Allow(context.Background(), "shared")
			if ok {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, DefaultLimit, accepted)
}

func TestMemoryLimiter_StopIsIdempotent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute, zap.NewNop(), WithCleanupFrequency(time.Millisecond))
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func ExampleMemoryLimiter_AllowAt() {
	l := NewMemoryLimiter(2, time.Hour, zap.NewNop())
	defer l.Stop()

	fmt.Println(l.AllowAt("client", epoch))
	fmt.Println(l.AllowAt("client", epoch))
	fmt.Println(l.AllowAt("client", epoch))
	// Output:
	// true
	// true
	// false
}
