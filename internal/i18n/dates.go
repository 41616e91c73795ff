// Package i18n holds the Italian calendar labels the templates render.
package i18n

import (
	"fmt"
	"time"
)

var weekdayShortNames = [7]string{"DOM", "LUN", "MAR", "MER", "GIO", "VEN", "SAB"}

var monthShortNames = [12]string{"GEN", "FEB", "MAR", "APR", "MAG", "GIU", "LUG", "AGO", "SET", "OTT", "NOV", "DIC"}

// FormatDateShort renders an ISO date as the compact Italian label shown
// on the dashboards, e.g. "2024-01-05" -> "VEN 05 GEN". Unparseable input
// is returned unchanged.
func FormatDateShort(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	weekday := weekdayShortNames[int(parsed.Weekday())]
	month := monthShortNames[int(parsed.Month())-1]
	return fmt.Sprintf("%s %02d %s", weekday, parsed.Day(), month)
}

// WeekdayLabel names a canonical weekday index in short Italian form.
func WeekdayLabel(index int) string {
	if index < 0 || index >= len(weekdayShortNames) {
		return "-"
	}
	return weekdayShortNames[index]
}
