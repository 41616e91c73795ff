package services

import (
	"testing"

	"github.com/frabiasco/assenze/internal/models"
)

func TestToggleAbsenceInsertsNormalizedRecord(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	inserted := ToggleAbsence(&document, " Anna.Rossi@Example.com ", "2024-02-05")

	if inserted == nil {
		t.Fatal("expected first toggle to insert a record")
	}
	if inserted.Email != "anna.rossi@example.com" {
		t.Fatalf("expected normalized email, got %q", inserted.Email)
	}
	if len(document.Absences) != 1 {
		t.Fatalf("expected 1 absence, got %d", len(document.Absences))
	}
}

func TestToggleAbsenceDoubleToggleRestoresOriginalState(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	if removed := ToggleAbsence(&document, "anna@example.com", "2024-02-05"); removed == nil {
		t.Fatal("first toggle should insert")
	}
	if reinserted := ToggleAbsence(&document, "ANNA@example.com ", "2024-02-05"); reinserted != nil {
		t.Fatal("second toggle should remove, not insert")
	}
	if len(document.Absences) != 0 {
		t.Fatalf("expected empty ledger after double toggle, got %v", document.Absences)
	}
}

func TestToggleAbsenceKeepsAtMostOneRecordPerPair(t *testing.T) {
	t.Parallel()

	document := models.EmptyDocument()
	ToggleAbsence(&document, "anna@example.com", "2024-02-05")
	ToggleAbsence(&document, "anna@example.com", "2024-02-07")
	ToggleAbsence(&document, "Anna@Example.com", "2024-02-05")
	ToggleAbsence(&document, "anna@example.com", "2024-02-05")

	count := 0
	for _, record := range document.Absences {
		if record.Email == "anna@example.com" && record.Date == "2024-02-05" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one record for the pair, got %d", count)
	}
}

func TestIsAbsentMatchesNormalizedEmail(t *testing.T) {
	t.Parallel()

	absences := []models.AbsenceRecord{
		{Email: "anna@example.com", Date: "2024-02-05"},
	}

	if !IsAbsent(absences, " ANNA@example.com", "2024-02-05") {
		t.Fatal("expected absent for normalized match")
	}
	if IsAbsent(absences, "anna@example.com", "2024-02-06") {
		t.Fatal("expected present for a different date")
	}
	if IsAbsent(absences, "luca@example.com", "2024-02-05") {
		t.Fatal("expected present for a different identity")
	}
}

func TestAbsencesForEmailSortedByDateAscending(t *testing.T) {
	t.Parallel()

	absences := []models.AbsenceRecord{
		{Email: "anna@example.com", Date: "2024-03-11"},
		{Email: "luca@example.com", Date: "2024-01-02"},
		{Email: "anna@example.com", Date: "2024-01-08"},
		{Email: "Anna@Example.com", Date: "2024-02-19"},
	}

	history := AbsencesForEmail(absences, "anna@example.com")
	if len(history) != 3 {
		t.Fatalf("expected 3 records, got %d", len(history))
	}
	want := []string{"2024-01-08", "2024-02-19", "2024-03-11"}
	for position, date := range want {
		if history[position].Date != date {
			t.Fatalf("expected dates %v, got %v", want, history)
		}
	}
}
