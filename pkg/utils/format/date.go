package format

import (
	"sync"
	"time"
)

// DefaultDateLayout matches an en-US locale date, e.g. 11/14/2023
const DefaultDateLayout = "1/2/2006"

var (
	dateMu       sync.RWMutex
	dateLayout   = DefaultDateLayout
	dateLocation = time.Local
)

// SetDateLocale changes the layout and location used by FormatDate.
// Empty layout or nil location keep the current value.
func SetDateLocale(layout string, loc *time.Location) {
	dateMu.Lock()
	defer dateMu.Unlock()

	if layout != "" {
		dateLayout = layout
	}
	if loc != nil {
		dateLocation = loc
	}
}

// FormatDate formats epoch seconds as a calendar date in the configured locale.
// Callers only pass timestamps the remote API actually reported.
func FormatDate(epochSeconds int64) string {
	dateMu.RLock()
	layout, loc := dateLayout, dateLocation
	dateMu.RUnlock()

	return FormatDateIn(epochSeconds, loc, layout)
}

// FormatDateIn formats epoch seconds using an explicit location and layout
func FormatDateIn(epochSeconds int64, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return time.UnixMilli(epochSeconds * 1000).In(loc).Format(layout)
}
