package businesstime

import "time"

// Between returns the elapsed business time from start to end: the portion
// of [start, end) that falls inside the calendar's work window on working
// weekdays. A weekend day contributes nothing regardless of where start or
// end fall within it. If start is not before end the result is zero.
func (c *Calendar) Between(start, end time.Time) time.Duration {
	var total time.Duration

	cur := start
	for cur.Before(end) {
		if !c.IsWorkday(cur) {
			cur = c.nextWorkStart(cur)
			continue
		}

		dayStart, dayEnd := c.WorkWindow(cur)

		// Clip the window on the start and end days.
		if sameDate(cur, start) && start.After(dayStart) {
			dayStart = start
		}
		if sameDate(cur, end) && end.Before(dayEnd) {
			dayEnd = end
		}

		if dayStart.Before(dayEnd) {
			total += dayEnd.Sub(dayStart)
		}

		cur = c.nextWorkStart(cur)
	}

	return total
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
