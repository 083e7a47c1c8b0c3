package handler

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
	"clinicportal/internal/render"
	"clinicportal/internal/service"
)

// PatientHandler serves signup, the doctor listing for patients, booking and the
// patient's appointments.
type PatientHandler struct {
	doctors  service.DoctorService
	patients service.PatientService
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(doctors service.DoctorService, patients service.PatientService) *PatientHandler {
	return &PatientHandler{doctors: doctors, patients: patients}
}

// viewerRole is the card role of the request: logged patients may book, everyone
// else is prompted to log in.
func viewerRole(c echo.Context) model.Role {
	if sess := CurrentSession(c); sess != nil && sess.Role == model.RoleLoggedPatient {
		return model.RoleLoggedPatient
	}
	return model.RolePatient
}

// Dashboard renders the doctor listing with booking buttons.
func (h *PatientHandler) Dashboard(c echo.Context) error {
	filter, listing := listDoctors(c, h.doctors)
	page := render.PatientDashboardPage{
		Layout:      layout(c, "Doctors"),
		Filter:      filterForm(filter),
		Times:       render.TimeOptions,
		Specialties: render.SpecialtyOptions,
	}
	page.Doctors = render.Listing(listing.Doctors, viewerRole(c), listing.Filtered, page.CSRF)
	return c.Render(http.StatusOK, "patient_dashboard", page)
}

// Cards renders only the card list.
func (h *PatientHandler) Cards(c echo.Context) error {
	_, listing := listDoctors(c, h.doctors)
	return c.Render(http.StatusOK, "doctor_cards", render.Listing(listing.Doctors, viewerRole(c), listing.Filtered, csrfToken(c)))
}

// SignupForm renders the signup form.
func (h *PatientHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", render.SignupPage{Layout: layout(c, "Sign Up")})
}

// Signup creates a patient account. A rejected form is shown again with its values.
func (h *PatientHandler) Signup(c echo.Context) error {
	var form model.PatientSignup
	if err := c.Bind(&form); err != nil {
		return fail(c, apperrors.ErrInvalidInput, "/signup")
	}

	var err error
	if verr := c.Validate(&form); verr != nil {
		err = apperrors.WithMessage(apperrors.ErrInvalidInput, "Please fill in all fields.")
	} else {
		var msg string
		if msg, err = h.patients.Signup(c.Request().Context(), form); err == nil {
			SetFlash(c, model.FlashInfo, msg)
			return redirect(c, "/")
		}
	}

	page := render.SignupPage{Layout: layout(c, "Sign Up"), Form: form}
	page.Form.Password = ""
	page.Flash = &model.Flash{Level: model.FlashError, Message: apperrors.UserMessage(err)}
	return c.Render(http.StatusUnprocessableEntity, "signup", page)
}

// BookingForm renders the booking page for one doctor. The date query picks the day
// whose free slots are offered.
func (h *PatientHandler) BookingForm(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		return fail(c, apperrors.ErrInvalidInput, "/patient")
	}

	booking, err := h.patients.StartBooking(c.Request().Context(), CurrentSession(c), doctorID, c.QueryParam("date"))
	if err != nil {
		return fail(c, err, "/patient")
	}

	return c.Render(http.StatusOK, "booking", render.BookingPage{
		Layout:  layout(c, "Book Appointment"),
		Doctor:  render.DoctorCard(booking.Doctor, model.RoleLoggedPatient),
		Patient: booking.Patient,
		Date:    booking.Date,
		Slots:   booking.Slots,
	})
}

// Book books the chosen slot.
func (h *PatientHandler) Book(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		return fail(c, apperrors.ErrInvalidInput, "/patient")
	}
	back := fmt.Sprintf("/patient/book/%d", doctorID)

	var form service.BookingForm
	if err := c.Bind(&form); err != nil {
		return fail(c, apperrors.ErrInvalidInput, back)
	}
	if err := c.Validate(&form); err != nil {
		return fail(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please pick a date and a time."), back)
	}

	msg, err := h.patients.Book(c.Request().Context(), CurrentSession(c), doctorID, form)
	if err != nil {
		return fail(c, err, back+"?date="+url.QueryEscape(form.Date))
	}
	SetFlash(c, model.FlashInfo, msg)
	return redirect(c, "/patient/appointments")
}

// Appointments lists the logged patient's appointments.
func (h *PatientHandler) Appointments(c echo.Context) error {
	filter := service.PatientAppointmentsFilter{
		Condition:  c.QueryParam("condition"),
		DoctorName: c.QueryParam("name"),
	}
	page := render.PatientAppointmentsPage{
		Layout:     layout(c, "My Appointments"),
		Condition:  filter.Condition,
		DoctorName: filter.DoctorName,
	}

	appointments, err := h.patients.Appointments(c.Request().Context(), CurrentSession(c), filter)
	if err != nil {
		if apperrors.MapErrorToHTTP(err).StatusCode == http.StatusUnauthorized {
			return fail(c, err, "/")
		}
		log.Printf("patient appointments: %v", err)
		page.Flash = &model.Flash{Level: model.FlashError, Message: apperrors.UserMessage(err)}
	}
	page.Appointments = appointments
	return c.Render(http.StatusOK, "patient_appointments", page)
}
