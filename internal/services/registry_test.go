package services

import (
	"testing"

	"github.com/frabiasco/assenze/internal/models"
)

func TestUpsertCategoryCollapsesDuplicateSpellings(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	category := UpsertCategory(&document, "A", []string{"lunedi", "Lunedì ", "LUNEDI"})

	if len(category.Days) != 1 || category.Days[0] != "lunedi" {
		t.Fatalf("expected days [lunedi], got %v", category.Days)
	}
}

func TestUpsertCategoryReplacesDaysOnSecondUpsert(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	UpsertCategory(&document, "Pulcini", []string{"lunedi", "mercoledi"})
	UpsertCategory(&document, "Pulcini", []string{"venerdi"})

	if len(document.Categories) != 1 {
		t.Fatalf("expected one category, got %d", len(document.Categories))
	}
	days := document.Categories[0].Days
	if len(days) != 1 || days[0] != "venerdi" {
		t.Fatalf("expected latest days [venerdi], got %v", days)
	}
}

func TestUpsertCategoryNameMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	UpsertCategory(&document, "Pulcini", []string{"lunedi"})
	UpsertCategory(&document, "pulcini", []string{"martedi"})

	if len(document.Categories) != 2 {
		t.Fatalf("expected two distinct categories, got %d", len(document.Categories))
	}
}

func TestUpsertCategoryDropsUnknownDayNames(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	category := UpsertCategory(&document, "A", []string{"festivo", "monday", "giovedi"})

	if len(category.Days) != 1 || category.Days[0] != "giovedi" {
		t.Fatalf("expected days [giovedi], got %v", category.Days)
	}
}

func TestUpsertCategoryEmptyDaysYieldsEmptySet(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	category := UpsertCategory(&document, "A", nil)
	if len(category.Days) != 0 {
		t.Fatalf("expected empty day set, got %v", category.Days)
	}
}

func TestSortedCategoriesOrdersByNameAscending(t *testing.T) {
	t.Parallel()

	categories := []models.Category{
		{Name: "Pulcini"},
		{Name: "Allievi"},
		{Name: "Esordienti"},
	}

	ordered := SortedCategories(categories)
	want := []string{"Allievi", "Esordienti", "Pulcini"}
	for position, name := range want {
		if ordered[position].Name != name {
			t.Fatalf("expected order %v, got %v", want, ordered)
		}
	}
	// Input untouched.
	if categories[0].Name != "Pulcini" {
		t.Fatal("SortedCategories must not reorder its input")
	}
}

func TestFindCategoryExactMatchOnly(t *testing.T) {
	t.Parallel()

	categories := []models.Category{{Name: "Pulcini", Days: []string{"lunedi"}}}

	if _, found := FindCategory(categories, "Pulcini"); !found {
		t.Fatal("expected exact name to match")
	}
	if _, found := FindCategory(categories, "pulcini"); found {
		t.Fatal("category lookup must stay case-sensitive")
	}
}
