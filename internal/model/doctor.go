package model

// Doctor is a doctor record as served by the clinic backend.
type Doctor struct {
	ID             int64    `json:"id,omitempty"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Password       string   `json:"password,omitempty"` // write only, sent on creation
	Specialty      string   `json:"specialty,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	AvailableTimes []string `json:"availableTimes"`
}

// Speciality returns the specialization, falling back to the specialty field.
// Older backend builds send one or the other.
func (d Doctor) Speciality() string {
	if d.Specialization != "" {
		return d.Specialization
	}
	return d.Specialty
}

// DoctorList is the envelope of the doctor list and filter endpoints.
type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}
