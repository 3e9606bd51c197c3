package offers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a 12-hour departure string ("HH:MM AM/PM") into minutes
// since midnight. 12 AM maps to hour 0, 12 PM stays 12, other PM hours add 12.
func ParseClock(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed clock %q", s)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("bad minute in %q", s)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("bad meridiem in %q", s)
	}

	return hour*60 + minute, nil
}
