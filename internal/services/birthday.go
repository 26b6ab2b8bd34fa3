package services

import "time"

// birthCode encodes a month and day as month*100+day. The encoding ignores
// the year, so birthdays from any birth year compare on calendar position
// alone.
func birthCode(month time.Month, day int) int {
	return int(month)*100 + day
}

// birthdayInWindow reports whether a birthday with the given month and day
// falls inside [today, today+windowDays], inclusive on both ends.
//
// When the window crosses a year boundary the two bounds land in different
// years and the check becomes a disjunction: a birthday matches if it sits in
// the tail of the old year OR the head of the new one. A plain range check
// would wrongly exclude early-January birthdays evaluated from late December.
func birthdayInWindow(today time.Time, windowDays int, month time.Month, day int) bool {
	end := today.AddDate(0, 0, windowDays)
	code := birthCode(month, day)
	startCode := birthCode(today.Month(), today.Day())
	endCode := birthCode(end.Month(), end.Day())

	if today.Year() == end.Year() {
		return code >= startCode && code <= endCode
	}
	return code >= startCode || code <= endCode
}
