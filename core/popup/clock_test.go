package popup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_FiresInOrder(t *testing.T) {
	clock := NewManualClock()
	var fired []string

	clock.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "b") })
	clock.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "a") })
	clock.AfterFunc(50*time.Millisecond, func() { fired = append(fired, "c") })

	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, clock.Pending())
}

func TestManualClock_NestedTimersWithinWindow(t *testing.T) {
	clock := NewManualClock()
	var fired []string

	clock.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, "outer")
		clock.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "inner") })
	})

	clock.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"outer"}, fired)

	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"outer", "inner"}, fired)
}

func TestManualClock_Stop(t *testing.T) {
	clock := NewManualClock()
	called := false

	timer := clock.AfterFunc(time.Second, func() { called = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clock.Advance(2 * time.Second)
	assert.False(t, called)
}

func TestDebouncer_OnlyLastCallRuns(t *testing.T) {
	clock := NewManualClock()
	d := NewDebouncer(clock, 300*time.Millisecond)
	var runs []int

	d.Trigger(func() { runs = append(runs, 1) })
	clock.Advance(200 * time.Millisecond)
	d.Trigger(func() { runs = append(runs, 2) })
	clock.Advance(200 * time.Millisecond)
	assert.Empty(t, runs, "quiet period restarts on each trigger")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{2}, runs)
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := NewManualClock()
	d := NewDebouncer(clock, 300*time.Millisecond)
	called := false

	d.Trigger(func() { called = true })
	d.Cancel()
	clock.Advance(time.Second)
	assert.False(t, called)
}
