package reward

import (
	"fmt"
	"time"
)

// Granularity is the calendar period a loyalty campaign evaluates.
type Granularity string

const (
	GranularityMonth       Granularity = "MONTH"
	GranularityQuarter     Granularity = "QUARTER"
	GranularitySixMonth    Granularity = "SIX_MONTH"
	GranularityTwelveMonth Granularity = "TWELVE_MONTH"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityMonth, GranularityQuarter, GranularitySixMonth, GranularityTwelveMonth:
		return true
	default:
		return false
	}
}

// Window is one calendar period instance. Key identifies it for voucher deduplication.
type Window struct {
	Key   string
	Start time.Time
}

// WindowFor returns the window of granularity g containing now. Start is midnight
// in now's location.
func WindowFor(now time.Time, g Granularity) (Window, error) {
	year, month := now.Year(), now.Month()
	start := func(m time.Month) time.Time {
		return time.Date(year, m, 1, 0, 0, 0, 0, now.Location())
	}

	switch g {
	case GranularityMonth:
		return Window{Key: fmt.Sprintf("%04d-%02d", year, int(month)), Start: start(month)}, nil
	case GranularityQuarter:
		q := (int(month)-1)/3 + 1
		return Window{Key: fmt.Sprintf("%04d-Q%d", year, q), Start: start(time.Month((q-1)*3 + 1))}, nil
	case GranularitySixMonth:
		if month <= time.June {
			return Window{Key: fmt.Sprintf("%04d-H1", year), Start: start(time.January)}, nil
		}

		return Window{Key: fmt.Sprintf("%04d-H2", year), Start: start(time.July)}, nil
	case GranularityTwelveMonth:
		return Window{Key: fmt.Sprintf("%04d-Y", year), Start: start(time.January)}, nil
	default:
		return Window{}, ErrInvalidWindow
	}
}
