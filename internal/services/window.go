package services

import "time"

// DefaultHorizonDays is the rolling look-ahead of the attendance window.
const DefaultHorizonDays = 14

const isoDateLayout = "2006-01-02"

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ComputeWindow lists the ISO dates within [today, today+horizonDays-1]
// whose weekday matches one of dayNames. Today is included when its weekday
// matches. The reference today is injected by the caller; this function
// never reads the clock.
func ComputeWindow(dayNames []string, horizonDays int, today time.Time) []string {
	matched := MatchedDayIndices(dayNames)
	dates := []string{}
	if len(matched) == 0 || horizonDays <= 0 {
		return dates
	}

	start := DateAtLocation(today, today.Location())
	for offset := 0; offset < horizonDays; offset++ {
		candidate := start.AddDate(0, 0, offset)
		if matched[int(candidate.Weekday())] {
			dates = append(dates, candidate.Format(isoDateLayout))
		}
	}
	return dates
}
