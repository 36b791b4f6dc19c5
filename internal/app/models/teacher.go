package models

// Teacher holds subject names as denormalized strings, copied at assignment
// time. Deleting a Subject later does not rewrite teachers that reference it.
type Teacher struct {
	ID            string   `json:"id" bson:"_id"`
	Name          string   `json:"name" bson:"name"`
	Designation   string   `json:"designation,omitempty" bson:"designation,omitempty"`
	Qualification string   `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Experience    string   `json:"experience,omitempty" bson:"experience,omitempty"`
	Subjects      []string `json:"subjects" bson:"subjects"`
	IsOnLeave     bool     `json:"isOnLeave" bson:"is_on_leave"`
}
