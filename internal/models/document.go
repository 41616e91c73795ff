package models

// Document is the single application document every backend stores whole:
// one read gives the complete state, one write replaces it.
type Document struct {
	Users      []User          `json:"users" bson:"users"`
	Absences   []AbsenceRecord `json:"absences" bson:"absences"`
	Categories []Category      `json:"categories" bson:"categories"`
}

type User struct {
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password" bson:"password"`
	ChildName string `json:"childName" bson:"childName"`
	Category  string `json:"category" bson:"category"`
}

// Category maps a group of children to the weekdays it meets on. Days holds
// canonical lowercase day names ("lunedi", ...); unknown names may appear in
// legacy data and contribute nothing to the schedule window.
type Category struct {
	Name string   `json:"name" bson:"name"`
	Days []string `json:"days" bson:"days"`
}

// AbsenceRecord marks (email, date) as absent; no record means present.
// ChildName and Category are legacy snapshots some deployments wrote at
// toggle time, kept only as fallback display values.
type AbsenceRecord struct {
	Email     string `json:"email" bson:"email"`
	Date      string `json:"date" bson:"date"`
	ChildName string `json:"childName,omitempty" bson:"childName,omitempty"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
}

func EmptyDocument() Document {
	return Document{
		Users:      []User{},
		Absences:   []AbsenceRecord{},
		Categories: []Category{},
	}
}

// EnsureDefaults replaces nil collections with empty ones so stored data
// that predates a field still round-trips as arrays.
func (document *Document) EnsureDefaults() {
	if document.Users == nil {
		document.Users = []User{}
	}
	if document.Absences == nil {
		document.Absences = []AbsenceRecord{}
	}
	if document.Categories == nil {
		document.Categories = []Category{}
	}
}
