package services

import (
	"sort"

	"github.com/frabiasco/assenze/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var canonicalDayOrder = []string{"domenica", "lunedi", "martedi", "mercoledi", "giovedi", "venerdi", "sabato"}

// CanonicalDaySet normalizes the raw day names and keeps only recognized
// ones, deduplicated, in weekday-index order.
func CanonicalDaySet(rawDays []string) []string {
	matched := MatchedDayIndices(rawDays)
	days := make([]string, 0, len(matched))
	for index, name := range canonicalDayOrder {
		if matched[index] {
			days = append(days, name)
		}
	}
	return days
}

// UpsertCategory replaces the day set of the category named name, creating
// the category when it does not exist yet. Lookup is by exact name:
// category names are case-sensitive, unlike emails. Returns the resulting
// category.
func UpsertCategory(document *models.Document, name string, rawDays []string) models.Category {
	days := CanonicalDaySet(rawDays)

	for position := range document.Categories {
		if document.Categories[position].Name == name {
			document.Categories[position].Days = days
			return document.Categories[position]
		}
	}

	created := models.Category{Name: name, Days: days}
	document.Categories = append(document.Categories, created)
	return created
}

// FindCategory resolves a category by exact name.
func FindCategory(categories []models.Category, name string) (models.Category, bool) {
	for _, category := range categories {
		if category.Name == name {
			return category, true
		}
	}
	return models.Category{}, false
}

// SortedCategories returns a copy ordered by name, Italian collation.
func SortedCategories(categories []models.Category) []models.Category {
	ordered := make([]models.Category, len(categories))
	copy(ordered, categories)
	collator := collate.New(language.Italian)
	sort.SliceStable(ordered, func(left, right int) bool {
		return collator.CompareString(ordered[left].Name, ordered[right].Name) < 0
	})
	return ordered
}
