package bledom

import (
	"fmt"
	"strings"
)

// Day is a bitmask of weekdays used by schedule commands. Days combine with
// the | operator: Monday|Wednesday|Friday.
type Day byte

// Individual days.
const (
	Monday    Day = 0x01
	Tuesday   Day = 0x02
	Wednesday Day = 0x04
	Thursday  Day = 0x08
	Friday    Day = 0x10
	Saturday  Day = 0x20
	Sunday    Day = 0x40
)

// Composite day sets.
const (
	DaysNone Day = 0
	Weekdays     = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekend      = Saturday | Sunday
	DaysAll      = Weekdays | Weekend
)

var dayNames = []struct {
	day  Day
	name string
}{
	{Monday, "mon"},
	{Tuesday, "tue"},
	{Wednesday, "wed"},
	{Thursday, "thu"},
	{Friday, "fri"},
	{Saturday, "sat"},
	{Sunday, "sun"},
}

// String returns the day set as a comma-separated list of short day names.
func (d Day) String() string {
	switch d {
	case DaysNone:
		return "none"
	case DaysAll:
		return "all"
	}

	var parts []string
	for _, dn := range dayNames {
		if d&dn.day != 0 {
			parts = append(parts, dn.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseDays parses a comma-separated day list into a Day bitmask. Accepted
// names are the three-letter abbreviations (mon, tue, ...) plus the composites
// "all", "weekdays", "weekend", and "none". Parsing is case-insensitive.
func ParseDays(s string) (Day, error) {
	var days Day
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		switch part {
		case "all":
			days |= DaysAll
			continue
		case "weekdays":
			days |= Weekdays
			continue
		case "weekend":
			days |= Weekend
			continue
		case "none":
			continue
		}

		matched := false
		for _, dn := range dayNames {
			if part == dn.name {
				days |= dn.day
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("%w: unknown day %q", ErrInvalidParameter, part)
		}
	}
	return days, nil
}
