package deck

import "time"

// DefaultKioskInterval is the auto-advance cadence used when kiosk mode is
// enabled without an explicit interval.
const DefaultKioskInterval = 30 * time.Second

// AutoAdvanceStep performs one kiosk step: advance, or loop back to the
// first slide from the last one. Nothing calls this on its own; hosts run
// it only when kiosk mode was asked for.
func (c *Controller) AutoAdvanceStep() {
	if c.cursor < c.Total()-1 {
		c.ChangeSlide(1)
		return
	}
	c.GoToSlide(0)
}
