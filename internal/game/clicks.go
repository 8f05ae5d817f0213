package game

import "fmt"

// clickTracker counts button clicks toward revealing the surprise.
type clickTracker struct {
	count     int
	threshold int
}

// click records a click and reports whether the threshold has been reached.
func (c *clickTracker) click() bool {
	c.count++
	return c.count >= c.threshold
}

// hint is shown under the button between the first click and the reveal.
func (c *clickTracker) hint() string {
	left := c.threshold - c.count
	if c.count == 0 || left <= 0 {
		return ""
	}
	plural := "s"
	if left == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d more click%s to reveal the surprise!", left, plural)
}
