package services

import (
	"sort"
	"time"

	"github.com/frabiasco/assenze/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnknownFieldPlaceholder is shown when an absence record's email resolves
// to no registered identity and the record carries no snapshot either.
const UnknownFieldPlaceholder = "-"

type UpcomingDay struct {
	Date   string
	Absent bool
}

type ParentView struct {
	User     models.User
	Upcoming []UpcomingDay
	History  []models.AbsenceRecord
}

// EnrichedAbsence is an absence record joined with the owning identity's
// category and child name for the admin report.
type EnrichedAbsence struct {
	Email     string
	Date      string
	Category  string
	ChildName string
}

type AdminView struct {
	Absences           []EnrichedAbsence
	Categories         []models.Category
	CalendarByCategory map[string][]string
}

// BuildParentView projects one parent's dashboard: the upcoming schedule
// window of their child's category with per-date absent flags, plus the
// absence history. A category that no longer exists yields an empty
// window, not an error.
func BuildParentView(document models.Document, email string, today time.Time) (ParentView, bool) {
	user, found := FindUserByEmail(document.Users, email)
	if !found {
		return ParentView{}, false
	}

	days := []string{}
	if category, ok := FindCategory(document.Categories, user.Category); ok {
		days = category.Days
	}

	window := ComputeWindow(days, DefaultHorizonDays, today)
	upcoming := make([]UpcomingDay, 0, len(window))
	for _, date := range window {
		upcoming = append(upcoming, UpcomingDay{
			Date:   date,
			Absent: IsAbsent(document.Absences, user.Email, date),
		})
	}

	return ParentView{
		User:     user,
		Upcoming: upcoming,
		History:  AbsencesForEmail(document.Absences, user.Email),
	}, true
}

// BuildAdminView projects the administrator dashboard: every absence
// enriched with category and child name, totally ordered by date, then
// category, then child name (Italian collation for the string legs), the
// sorted category list, and each category's own schedule window.
func BuildAdminView(document models.Document, today time.Time) AdminView {
	enriched := make([]EnrichedAbsence, 0, len(document.Absences))
	for _, record := range document.Absences {
		enriched = append(enriched, enrichAbsence(record, document.Users))
	}

	collator := collate.New(language.Italian)
	sort.SliceStable(enriched, func(left, right int) bool {
		if enriched[left].Date != enriched[right].Date {
			return enriched[left].Date < enriched[right].Date
		}
		if order := collator.CompareString(enriched[left].Category, enriched[right].Category); order != 0 {
			return order < 0
		}
		return collator.CompareString(enriched[left].ChildName, enriched[right].ChildName) < 0
	})

	calendar := make(map[string][]string, len(document.Categories))
	for _, category := range document.Categories {
		calendar[category.Name] = ComputeWindow(category.Days, DefaultHorizonDays, today)
	}

	return AdminView{
		Absences:           enriched,
		Categories:         SortedCategories(document.Categories),
		CalendarByCategory: calendar,
	}
}

// enrichAbsence joins a record with its identity. The join is the source
// of truth; snapshot fields stored on the record are only a fallback for
// dangling emails, and the placeholder covers everything else.
func enrichAbsence(record models.AbsenceRecord, users []models.User) EnrichedAbsence {
	if user, found := FindUserByEmail(users, record.Email); found {
		return EnrichedAbsence{
			Email:     record.Email,
			Date:      record.Date,
			Category:  placeholderIfEmpty(user.Category),
			ChildName: placeholderIfEmpty(user.ChildName),
		}
	}
	return EnrichedAbsence{
		Email:     record.Email,
		Date:      record.Date,
		Category:  placeholderIfEmpty(record.Category),
		ChildName: placeholderIfEmpty(record.ChildName),
	}
}

func placeholderIfEmpty(value string) string {
	if value == "" {
		return UnknownFieldPlaceholder
	}
	return value
}
