// Package reveal grows a visible window over a filtered list in fixed
// steps. The window starts at a page size, grows by an increment each
// time the end-of-list sentinel reports visible, and collapses back to
// one page whenever the underlying list changes.
package reveal

import "time"

const (
	// DefaultPageSize is the initial window and the condensed cap.
	DefaultPageSize = 6
	// DefaultIncrement is how many entries each settled sentinel
	// event adds.
	DefaultIncrement = 3
	// DefaultSettleDelay debounces sentinel events so one scroll
	// gesture grows the window once.
	DefaultSettleDelay = 250 * time.Millisecond
)

// Controller tracks the reveal window for one session and one list
// identity. It is not safe for concurrent use; callers serialize
// access per session.
type Controller struct {
	PageSize    int
	Increment   int
	SettleDelay time.Duration

	// Condensed pins the window to PageSize regardless of sentinel
	// events. Used for embedded or teaser renderings of the list.
	Condensed bool

	visible    int
	lastGrowAt time.Time

	// now is replaceable for deterministic tests.
	now func() time.Time
}

// New returns a controller with the default window geometry.
func New() *Controller {
	return &Controller{
		PageSize:    DefaultPageSize,
		Increment:   DefaultIncrement,
		SettleDelay: DefaultSettleDelay,
		now:         time.Now,
	}
}

// NewWithClock returns a controller whose debounce clock is supplied
// by the caller.
func NewWithClock(now func() time.Time) *Controller {
	c := New()
	c.now = now
	return c
}

// Restore rehydrates a controller from persisted session state.
func (c *Controller) Restore(visible int, lastGrowAt time.Time) {
	if visible < c.PageSize {
		visible = c.PageSize
	}
	c.visible = visible
	c.lastGrowAt = lastGrowAt
}

// Visible returns how many of total entries the window exposes. It
// never exceeds total and never shrinks below one page while total
// allows it.
func (c *Controller) Visible(total int) int {
	v := c.visible
	if v < c.PageSize {
		v = c.PageSize
	}
	if c.Condensed {
		v = c.PageSize
	}
	if v > total {
		v = total
	}
	if v < 0 {
		v = 0
	}
	return v
}

// HasMore reports whether entries beyond the window remain.
func (c *Controller) HasMore(total int) bool {
	return c.Visible(total) < total
}

// SentinelVisible records one end-of-list visibility event and grows
// the window if the event settles past the debounce delay. It returns
// the new visible count and whether the window actually grew.
func (c *Controller) SentinelVisible(total int) (int, bool) {
	if c.Condensed {
		return c.Visible(total), false
	}
	if !c.HasMore(total) {
		return c.Visible(total), false
	}
	now := c.now()
	if !c.lastGrowAt.IsZero() && now.Sub(c.lastGrowAt) < c.SettleDelay {
		return c.Visible(total), false
	}
	c.lastGrowAt = now
	c.visible = c.Visible(total) + c.Increment
	if c.visible > total {
		c.visible = total
	}
	return c.Visible(total), true
}

// Reset collapses the window back to one page. Called whenever the
// platform or the active filters change, so a new list never inherits
// the previous list's growth.
func (c *Controller) Reset() {
	c.visible = c.PageSize
	c.lastGrowAt = time.Time{}
}

// State exposes the persisted fields for the session store.
func (c *Controller) State() (visible int, lastGrowAt time.Time) {
	v := c.visible
	if v < c.PageSize {
		v = c.PageSize
	}
	return v, c.lastGrowAt
}
