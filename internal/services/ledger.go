package services

import (
	"sort"

	"github.com/frabiasco/assenze/internal/models"
)

// ToggleAbsence flips the absence mark for (email, date) inside the
// document. It returns the inserted record when the child is now marked
// absent, or nil when an existing mark was removed. At most one record
// exists per normalized (email, date) pair.
func ToggleAbsence(document *models.Document, email string, date string) *models.AbsenceRecord {
	normalized := NormalizeEmail(email)

	for position, record := range document.Absences {
		if NormalizeEmail(record.Email) == normalized && record.Date == date {
			document.Absences = append(document.Absences[:position], document.Absences[position+1:]...)
			return nil
		}
	}

	inserted := models.AbsenceRecord{Email: normalized, Date: date}
	document.Absences = append(document.Absences, inserted)
	return &inserted
}

// IsAbsent reports whether (email, date) carries an absence mark.
func IsAbsent(absences []models.AbsenceRecord, email string, date string) bool {
	normalized := NormalizeEmail(email)
	for _, record := range absences {
		if NormalizeEmail(record.Email) == normalized && record.Date == date {
			return true
		}
	}
	return false
}

// AbsencesForEmail lists one identity's absence records, date ascending.
func AbsencesForEmail(absences []models.AbsenceRecord, email string) []models.AbsenceRecord {
	normalized := NormalizeEmail(email)
	matched := make([]models.AbsenceRecord, 0)
	for _, record := range absences {
		if NormalizeEmail(record.Email) == normalized {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(left, right int) bool {
		return matched[left].Date < matched[right].Date
	})
	return matched
}
