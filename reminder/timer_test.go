package reminder

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerKeepsTicking(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(10*time.Millisecond, true, func() { fired.Add(1) })
	defer timer.Stop()

	assert.True(t, timer.Running())
	require.Eventually(t, func() bool { return fired.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, timer.Running())
}

func TestTimerDisabledDoesNotStart(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(5*time.Millisecond, false, func() { fired.Add(1) })
	defer timer.Stop()

	assert.False(t, timer.Running())
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestTimerUpdate(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(time.Hour, false, func() { fired.Add(1) })
	defer timer.Stop()

	timer.Update(10*time.Millisecond, true)
	assert.True(t, timer.Running())
	assert.Equal(t, 10*time.Millisecond, timer.Interval())
	require.Eventually(t, func() bool { return fired.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)

	timer.Update(10*time.Millisecond, false)
	assert.False(t, timer.Running())
}

func TestTimerStop(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(10*time.Millisecond, true, func() { fired.Add(1) })

	timer.Stop()
	timer.Stop()
	assert.False(t, timer.Running())

	// Update after Stop is ignored
	timer.Update(5*time.Millisecond, true)
	assert.False(t, timer.Running())

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestTimerIgnoresNonPositiveInterval(t *testing.T) {
	timer := NewTimer(0, true, func() {})
	defer timer.Stop()
	assert.False(t, timer.Running())
}
