package tracking

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotCount is the number of fixed 2-hour meal slots per day. Each slot
// holds at most one meal.
const SlotCount = 12

// SlotStart returns the wire time for a slot's opening hour, e.g. slot 4 ->
// "08:00:00".
func SlotStart(slot int) string {
	return fmt.Sprintf("%02d:00:00", slot*2)
}

// SlotLabel formats a slot for display, e.g. "8am - 10am".
func SlotLabel(slot int) string {
	return fmt.Sprintf("%s - %s", hourLabel(slot*2), hourLabel(slot*2+2))
}

func hourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if hour >= 12 && hour < 24 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d%s", h, suffix)
}

// slotForTime maps a meal's HH:MM:SS time to its slot by truncating to the
// hour. Returns -1 for unparseable times.
func slotForTime(t string) int {
	parts := strings.SplitN(t, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return -1
	}
	return hour / 2
}
