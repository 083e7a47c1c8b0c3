package render

import "clinicportal/internal/model"

// TimeOptions and SpecialtyOptions feed the doctor filter dropdowns.
var (
	TimeOptions      = []string{"AM", "PM"}
	SpecialtyOptions = []string{
		"Cardiologist",
		"Dermatologist",
		"Neurologist",
		"Pediatrician",
		"Orthopedic",
		"Gynecologist",
		"Psychiatrist",
		"Dentist",
		"Ophthalmologist",
		"ENT",
		"Urologist",
		"Oncologist",
		"Gastroenterologist",
		"General Physician",
	}
)

// Layout is the data every page shares.
type Layout struct {
	Title    string
	Flash    *model.Flash
	Role     string
	LoggedIn bool
	CSRF     string
}

// FilterForm echoes the doctor filter inputs back into the form.
type FilterForm struct {
	Name      string
	Time      string
	Specialty string
}

// IndexPage is the landing page with the role selection and login forms.
type IndexPage struct {
	Layout
	Logins []LoginForm
}

// LoginForm describes one login form on the landing page.
type LoginForm struct {
	Role          string
	Label         string
	UsernameField string
	UsernameLabel string
	PasswordField string
}

// AdminDashboardPage is the admin doctor management page.
type AdminDashboardPage struct {
	Layout
	Filter      FilterForm
	Doctors     DoctorsView
	Times       []string
	Specialties []string
}

// DoctorDashboardPage is the doctor's appointment table page.
type DoctorDashboardPage struct {
	Layout
	Date        string
	PatientName string
	Table       RowsView
}

// PatientDashboardPage lists doctors to patients and visitors.
type PatientDashboardPage struct {
	Layout
	Filter      FilterForm
	Doctors     DoctorsView
	Times       []string
	Specialties []string
}

// BookingPage is the booking form for one doctor.
type BookingPage struct {
	Layout
	Doctor  CardView
	Patient model.Patient
	Date    string
	Slots   []string
}

// PatientAppointmentsPage lists the logged patient's appointments.
type PatientAppointmentsPage struct {
	Layout
	Condition    string
	DoctorName   string
	Appointments []model.Appointment
}

// SignupPage is the patient signup form.
type SignupPage struct {
	Layout
	Form model.PatientSignup
}
