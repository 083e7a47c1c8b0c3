package model

// Appointment is an appointment record. The date the doctor dashboard filters on is a
// request parameter and is not stored here.
type Appointment struct {
	ID              int64  `json:"id,omitempty"`
	DoctorID        int64  `json:"doctorId,omitempty"`
	DoctorName      string `json:"doctorName,omitempty"`
	PatientID       int64  `json:"patientId"`
	PatientName     string `json:"patientName"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Prescription    string `json:"prescription,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	Status          int    `json:"status,omitempty"`
}

// Patient assembles the patient shown in a dashboard row from the appointment fields.
func (a Appointment) Patient() Patient {
	return Patient{
		ID:           a.PatientID,
		Name:         a.PatientName,
		Phone:        a.Phone,
		Email:        a.Email,
		Prescription: a.Prescription,
	}
}

// AppointmentList is the envelope of the appointment endpoints.
type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

// BookingRequest is the body sent to the booking endpoint.
type BookingRequest struct {
	Doctor          Doctor  `json:"doctor"`
	Patient         Patient `json:"patient"`
	AppointmentTime string  `json:"appointmentTime"`
	Status          int     `json:"status"`
}
