package models

type Student struct {
	ID             string `json:"id" bson:"_id"`
	FullName       string `json:"fullName" bson:"full_name"`
	FatherName     string `json:"fatherName" bson:"father_name"`
	AdmissionNo    string `json:"admissionNo" bson:"admission_no"`
	FormBNo        string `json:"formBNo,omitempty" bson:"form_b_no,omitempty"`
	Address        string `json:"address,omitempty" bson:"address,omitempty"`
	AdmissionClass string `json:"admissionClass" bson:"admission_class"`
	PhotoURL       string `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`

	// Leaves and Attendance are carried for snapshot compatibility with the
	// original data shape; no operation populates or consumes them.
	Leaves     []LeaveRecord      `json:"leaves" bson:"leaves"`
	Attendance []AttendanceRecord `json:"attendance" bson:"attendance"`
}

type LeaveRecord struct {
	ID       string `json:"id" bson:"_id"`
	Date     string `json:"date" bson:"date"`
	Reason   string `json:"reason" bson:"reason"`
	Approved bool   `json:"approved" bson:"approved"`
}

type AttendanceRecord struct {
	Date   string `json:"date" bson:"date"`
	Status string `json:"status" bson:"status"`
}
