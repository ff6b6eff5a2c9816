package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock advances only when told to, making the debounce window
// deterministic.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestVisibleWindow(t *testing.T) {
	t.Run("starts at one page", func(t *testing.T) {
		c := New()
		assert.Equal(t, DefaultPageSize, c.Visible(21))
	})

	t.Run("never exceeds total", func(t *testing.T) {
		c := New()
		assert.Equal(t, 4, c.Visible(4))
		assert.Equal(t, 0, c.Visible(0))
	})

	t.Run("has more only while entries remain", func(t *testing.T) {
		c := New()
		assert.True(t, c.HasMore(21))
		assert.False(t, c.HasMore(6))
		assert.False(t, c.HasMore(3))
	})
}

func TestSentinelGrowth(t *testing.T) {
	t.Run("settled events grow by one increment", func(t *testing.T) {
		clock := newTestClock()
		c := NewWithClock(clock.Now)

		visible, grew := c.SentinelVisible(21)
		assert.True(t, grew)
		assert.Equal(t, 9, visible)

		clock.Advance(DefaultSettleDelay + time.Millisecond)
		visible, grew = c.SentinelVisible(21)
		assert.True(t, grew)
		assert.Equal(t, 12, visible)
	})

	t.Run("rapid events inside the settle delay are debounced", func(t *testing.T) {
		clock := newTestClock()
		c := NewWithClock(clock.Now)

		visible, grew := c.SentinelVisible(21)
		assert.True(t, grew)
		assert.Equal(t, 9, visible)

		// A burst of events from one scroll gesture
		for i := 0; i < 5; i++ {
			clock.Advance(10 * time.Millisecond)
			visible, grew = c.SentinelVisible(21)
			assert.False(t, grew)
			assert.Equal(t, 9, visible)
		}
	})

	t.Run("growth is monotonic and clamps at total", func(t *testing.T) {
		clock := newTestClock()
		c := NewWithClock(clock.Now)

		prev := c.Visible(10)
		for i := 0; i < 6; i++ {
			clock.Advance(DefaultSettleDelay + time.Millisecond)
			visible, _ := c.SentinelVisible(10)
			assert.GreaterOrEqual(t, visible, prev)
			assert.LessOrEqual(t, visible, 10)
			prev = visible
		}
		assert.Equal(t, 10, prev)
		assert.False(t, c.HasMore(10))
	})

	t.Run("no growth once everything is visible", func(t *testing.T) {
		clock := newTestClock()
		c := NewWithClock(clock.Now)
		c.Restore(21, time.Time{})

		visible, grew := c.SentinelVisible(21)
		assert.False(t, grew)
		assert.Equal(t, 21, visible)
	})
}

func TestReset(t *testing.T) {
	clock := newTestClock()
	c := NewWithClock(clock.Now)

	c.SentinelVisible(21)
	clock.Advance(DefaultSettleDelay + time.Millisecond)
	c.SentinelVisible(21)
	assert.Equal(t, 12, c.Visible(21))

	c.Reset()
	assert.Equal(t, DefaultPageSize, c.Visible(21))

	// A reset also reopens the debounce window immediately
	visible, grew := c.SentinelVisible(21)
	assert.True(t, grew)
	assert.Equal(t, 9, visible)
}

func TestCondensed(t *testing.T) {
	clock := newTestClock()
	c := NewWithClock(clock.Now)
	c.Condensed = true

	t.Run("pinned to one page", func(t *testing.T) {
		assert.Equal(t, DefaultPageSize, c.Visible(21))
	})

	t.Run("sentinel events are ignored", func(t *testing.T) {
		visible, grew := c.SentinelVisible(21)
		assert.False(t, grew)
		assert.Equal(t, DefaultPageSize, visible)
	})

	t.Run("restored growth is capped while condensed", func(t *testing.T) {
		c.Restore(15, time.Time{})
		assert.Equal(t, DefaultPageSize, c.Visible(21))
	})
}

func TestRestore(t *testing.T) {
	t.Run("round-trips through State", func(t *testing.T) {
		clock := newTestClock()
		c := NewWithClock(clock.Now)
		c.SentinelVisible(21)

		visible, lastGrow := c.State()

		c2 := NewWithClock(clock.Now)
		c2.Restore(visible, lastGrow)
		assert.Equal(t, c.Visible(21), c2.Visible(21))

		// The restored controller inherits the debounce window too
		_, grew := c2.SentinelVisible(21)
		assert.False(t, grew)
	})

	t.Run("restores below one page are clamped up", func(t *testing.T) {
		c := New()
		c.Restore(2, time.Time{})
		assert.Equal(t, DefaultPageSize, c.Visible(21))
	})
}
