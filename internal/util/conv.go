package util

import (
	"strconv"
)

// ParseSemester converts a path/query value into a semester number and
// reports whether it is inside the valid 1..8 range.
func ParseSemester(s string) (int, bool) {
	sem, err := strconv.Atoi(s)
	if err != nil || sem < MinSemester || sem > MaxSemester {
		return 0, false
	}
	return sem, true
}
