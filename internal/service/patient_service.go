package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinicportal/internal/apiclient"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// Messages shown in patient flows.
const (
	MsgLoginToBook        = "Please log in to book an appointment."
	MsgSessionExpired     = "Session expired. Please log in again."
	MsgBookingUnavailable = "Unable to start booking."
	MsgSignupDone         = "Signup successful! Please log in."
	MsgSignupFailed       = "Signup failed. Please try again later."
	MsgBooked             = "Appointment booked successfully."
	MsgBookingFailed      = "Failed to book appointment."
)

// Appointment conditions accepted by the patient appointment filter.
const (
	ConditionPast   = "past"
	ConditionFuture = "future"
)

// BookingForm is what the booking page submits.
type BookingForm struct {
	Date string `form:"date" validate:"required"`
	Slot string `form:"time" validate:"required"`
}

// Booking is the data behind the booking page.
type Booking struct {
	Doctor  model.Doctor
	Patient model.Patient
	Date    string
	Slots   []string
}

// PatientAppointmentsFilter narrows the logged patient's appointment list.
type PatientAppointmentsFilter struct {
	Condition  string `query:"condition"`
	DoctorName string `query:"name"`
}

// PatientService handles patient signup, booking and the patient's appointments.
type PatientService interface {
	Signup(ctx context.Context, signup model.PatientSignup) (string, error)
	Profile(ctx context.Context, sess *model.Session) (*model.Patient, error)
	StartBooking(ctx context.Context, sess *model.Session, doctorID int64, date string) (*Booking, error)
	Book(ctx context.Context, sess *model.Session, doctorID int64, form BookingForm) (string, error)
	Appointments(ctx context.Context, sess *model.Session, filter PatientAppointmentsFilter) ([]model.Appointment, error)
}

type patientService struct {
	backend apiclient.Backend
	doctors DoctorService
	audit   AuditService
	now     func() time.Time
}

// NewPatientService creates a new patient service.
func NewPatientService(backend apiclient.Backend, doctors DoctorService, audit AuditService) PatientService {
	return &patientService{backend: backend, doctors: doctors, audit: audit, now: time.Now}
}

// Signup trims the form and creates the patient account.
func (s *patientService) Signup(ctx context.Context, signup model.PatientSignup) (string, error) {
	signup.Name = strings.TrimSpace(signup.Name)
	signup.Email = strings.TrimSpace(signup.Email)
	signup.Phone = strings.TrimSpace(signup.Phone)
	signup.Address = strings.TrimSpace(signup.Address)
	if signup.Name == "" || signup.Email == "" || signup.Password == "" || signup.Phone == "" || signup.Address == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Please fill in all fields.")
	}

	result, err := s.backend.SignupPatient(ctx, signup)
	switch {
	case err != nil:
		err = apperrors.WithMessage(err, MsgSignupFailed)
	case !result.Success:
		err = apperrors.WithMessage(apperrors.ErrSaveFailed, orDefault(result.Message, MsgSignupFailed))
	}
	s.audit.Record(ctx, nil, model.AuditPatientSignup, signup.Email, err)
	if err != nil {
		return "", err
	}
	return orDefault(result.Message, MsgSignupDone), nil
}

// Profile returns the logged patient's record.
func (s *patientService) Profile(ctx context.Context, sess *model.Session) (*model.Patient, error) {
	token, err := s.patientToken(sess)
	if err != nil {
		return nil, err
	}
	patient, err := s.backend.GetPatient(ctx, token)
	if err != nil {
		var statusErr *apiclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return nil, apperrors.WithMessage(apperrors.ErrSessionExpired, MsgSessionExpired)
		}
		return nil, apperrors.WithMessage(err, MsgBookingUnavailable)
	}
	return patient, nil
}

// StartBooking gathers the doctor, the patient and the doctor's free slots on date.
// An empty date means today.
func (s *patientService) StartBooking(ctx context.Context, sess *model.Session, doctorID int64, date string) (*Booking, error) {
	token, err := s.patientToken(sess)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = s.now().UTC().Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("date %q: %w", date, apperrors.ErrInvalidDate)
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	patient, err := s.Profile(ctx, sess)
	if err != nil {
		return nil, err
	}

	slots, err := s.backend.GetDoctorAvailability(ctx, model.RolePatient.String(), doctorID, date, token)
	if err != nil {
		// Without availability the doctor's general hours are offered.
		slots = doctor.AvailableTimes
	}
	return &Booking{Doctor: *doctor, Patient: *patient, Date: date, Slots: slots}, nil
}

// Book books the chosen slot with the doctor.
func (s *patientService) Book(ctx context.Context, sess *model.Session, doctorID int64, form BookingForm) (string, error) {
	token, err := s.patientToken(sess)
	if err != nil {
		return "", err
	}
	at, err := AppointmentTime(form.Date, form.Slot)
	if err != nil {
		return "", err
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		return "", err
	}
	patient, err := s.Profile(ctx, sess)
	if err != nil {
		return "", err
	}

	result, err := s.backend.BookAppointment(ctx, model.BookingRequest{
		Doctor:          model.Doctor{ID: doctor.ID},
		Patient:         model.Patient{ID: patient.ID},
		AppointmentTime: at,
		Status:          0,
	}, token)
	switch {
	case err != nil:
		err = apperrors.WithMessage(err, MsgBookingFailed)
	case !result.Success:
		err = apperrors.WithMessage(apperrors.ErrSaveFailed, orDefault(result.Message, MsgBookingFailed))
	}
	s.audit.Record(ctx, sess, model.AuditBooking, strconv.FormatInt(doctorID, 10)+"@"+at, err)
	if err != nil {
		return "", err
	}
	return orDefault(result.Message, MsgBooked), nil
}

// Appointments lists the logged patient's appointments. Without a condition or doctor
// name every appointment is returned.
func (s *patientService) Appointments(ctx context.Context, sess *model.Session, filter PatientAppointmentsFilter) ([]model.Appointment, error) {
	token, err := s.patientToken(sess)
	if err != nil {
		return nil, err
	}

	switch filter.Condition {
	case "", ConditionPast, ConditionFuture:
	default:
		return nil, fmt.Errorf("condition %q: %w", filter.Condition, apperrors.ErrInvalidInput)
	}

	name := strings.TrimSpace(filter.DoctorName)
	if filter.Condition != "" || name != "" {
		return s.backend.FilterPatientAppointments(ctx, filter.Condition, name, token)
	}

	patient, err := s.Profile(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.backend.GetPatientAppointments(ctx, patient.ID, model.RolePatient.String(), token)
}

// patientToken returns the token of a logged patient session.
func (s *patientService) patientToken(sess *model.Session) (string, error) {
	if sess == nil {
		return "", apperrors.WithMessage(apperrors.ErrSessionExpired, MsgLoginToBook)
	}
	if sess.Role != model.RoleLoggedPatient {
		return "", apperrors.WithMessage(apperrors.ErrForbidden, MsgLoginToBook)
	}
	token, err := tokenOf(sess)
	if err != nil {
		return "", apperrors.WithMessage(err, MsgSessionExpired)
	}
	return token, nil
}

// AppointmentTime builds the backend's local date-time from a date and a slot such as
// "09:00-10:00". The slot's start is used.
func AppointmentTime(date, slot string) (string, error) {
	start := strings.TrimSpace(strings.SplitN(slot, "-", 2)[0])
	t, err := time.Parse(DateLayout+" 15:04", date+" "+start)
	if err != nil {
		return "", fmt.Errorf("slot %q on %q: %w", slot, date, apperrors.ErrInvalidInput)
	}
	return t.Format("2006-01-02T15:04:05"), nil
}
