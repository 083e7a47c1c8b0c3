package render

import (
	"fmt"
	"strings"

	"clinicportal/internal/model"
)

// Messages rendered in place of empty or failed listings.
const (
	NoDoctorsMessage         = "No doctors found with the given filters."
	NoAppointmentsMessage    = "No Appointments found for today."
	AppointmentsErrorMessage = "Error loading appointments. Try again later."
	// PlaceholderColspan spans every column of the appointment table.
	PlaceholderColspan = 5
)

// Action is the single control a doctor card offers.
type Action int

const (
	ActionNone Action = iota
	ActionDelete
	ActionLoginPrompt
	ActionBook
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionLoginPrompt:
		return "login-prompt"
	case ActionBook:
		return "book"
	}
	return "none"
}

// ActionFor maps a role to the card action it is offered. Every role is listed; an
// unlisted value is a programming error.
func ActionFor(role model.Role) Action {
	switch role {
	case model.RoleAdmin:
		return ActionDelete
	case model.RolePatient:
		return ActionLoginPrompt
	case model.RoleLoggedPatient:
		return ActionBook
	case model.RoleDoctor:
		return ActionNone
	}
	panic(fmt.Sprintf("render: no card action for %v", role))
}

// CardView is the template data of one doctor card.
type CardView struct {
	ID             int64
	Name           string
	Specialization string
	Email          string
	AvailableTimes string
	Action         Action
	CSRF           string
}

// DoctorCard builds the card for doctor as seen by role.
func DoctorCard(doctor model.Doctor, role model.Role) CardView {
	times := "N/A"
	if len(doctor.AvailableTimes) > 0 {
		times = strings.Join(doctor.AvailableTimes, ", ")
	}
	return CardView{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Speciality(),
		Email:          doctor.Email,
		AvailableTimes: times,
		Action:         ActionFor(role),
	}
}

// DoctorCards builds one card per doctor, in order.
func DoctorCards(doctors []model.Doctor, role model.Role) []CardView {
	cards := make([]CardView, 0, len(doctors))
	for _, d := range doctors {
		cards = append(cards, DoctorCard(d, role))
	}
	return cards
}

// DoctorsView is the content area of a doctor listing.
type DoctorsView struct {
	Cards        []CardView
	Empty        bool
	EmptyMessage string
}

// Listing builds the content area. A filtered listing without matches shows
// NoDoctorsMessage instead of cards; an unfiltered empty listing stays blank.
func Listing(doctors []model.Doctor, role model.Role, filtered bool, csrf string) DoctorsView {
	if filtered && len(doctors) == 0 {
		return DoctorsView{Cards: []CardView{}, Empty: true, EmptyMessage: NoDoctorsMessage}
	}
	cards := DoctorCards(doctors, role)
	for i := range cards {
		cards[i].CSRF = csrf
	}
	return DoctorsView{Cards: cards}
}

// RowView is one row of the doctor's appointment table.
type RowView struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	Prescription string
}

// PatientRow builds a table row from a patient.
func PatientRow(p model.Patient) RowView {
	return RowView{
		ID:           p.ID,
		Name:         p.Name,
		Phone:        p.Phone,
		Email:        p.Email,
		Prescription: p.Prescription,
	}
}

// RowsView is the body of the appointment table. When Placeholder is set it is
// rendered as a single full-width row instead of Rows.
type RowsView struct {
	Rows        []RowView
	Placeholder string
	Colspan     int
}

// AppointmentRows builds the table body for appointments. loadErr selects the error
// placeholder; an empty result selects the empty placeholder.
func AppointmentRows(appointments []model.Appointment, loadErr error) RowsView {
	if loadErr != nil {
		return RowsView{Placeholder: AppointmentsErrorMessage, Colspan: PlaceholderColspan}
	}
	if len(appointments) == 0 {
		return RowsView{Placeholder: NoAppointmentsMessage, Colspan: PlaceholderColspan}
	}
	rows := make([]RowView, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, PatientRow(a.Patient()))
	}
	return RowsView{Rows: rows, Colspan: PlaceholderColspan}
}
