package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical Italian day names, Sunday-first to match time.Weekday.
var dayIndexByName = map[string]int{
	"domenica":  0,
	"lunedi":    1,
	"martedi":   2,
	"mercoledi": 3,
	"giovedi":   4,
	"venerdi":   5,
	"sabato":    6,
}

// NormalizeDayName trims, lowercases and strips diacritics so that
// "Martedì " and "martedi" canonicalize to the same name.
func NormalizeDayName(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}

// CanonicalDayIndex resolves a canonical day name to its weekday index
// (domenica=0 .. sabato=6). Unknown names report ok=false and are silently
// dropped by callers: a bad day name never blocks saving a category, it
// just contributes no dates.
func CanonicalDayIndex(name string) (int, bool) {
	index, ok := dayIndexByName[name]
	return index, ok
}

// MatchedDayIndices normalizes each raw name and collects the set of
// recognized weekday indices. Duplicates collapse, unparseable names drop.
func MatchedDayIndices(rawNames []string) map[int]bool {
	matched := make(map[int]bool, len(rawNames))
	for _, raw := range rawNames {
		if index, ok := CanonicalDayIndex(NormalizeDayName(raw)); ok {
			matched[index] = true
		}
	}
	return matched
}
