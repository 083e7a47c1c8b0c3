package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/render"
	"clinicportal/internal/service"
)

// DoctorHandler serves the doctor's appointment table.
type DoctorHandler struct {
	appointments service.AppointmentService
}

// NewDoctorHandler creates a new doctor handler.
func NewDoctorHandler(appointments service.AppointmentService) *DoctorHandler {
	return &DoctorHandler{appointments: appointments}
}

// appointmentFilter reads the table filter. The today shortcut wins over a picked date.
func (h *DoctorHandler) appointmentFilter(c echo.Context) service.AppointmentFilter {
	filter := service.AppointmentFilter{
		Date:        c.QueryParam("date"),
		PatientName: c.QueryParam("name"),
	}
	if c.QueryParam("today") != "" {
		filter.Date = h.appointments.Today()
	}
	return filter
}

// Dashboard renders the appointments of one day, narrowed by patient name.
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	page, err := h.appointments.Load(c.Request().Context(), CurrentSession(c), h.appointmentFilter(c))
	if err != nil {
		return fail(c, err, "/doctor")
	}
	if page.Err != nil {
		log.Printf("doctor dashboard: %v", page.Err)
	}

	return c.Render(http.StatusOK, "doctor_dashboard", render.DoctorDashboardPage{
		Layout:      layout(c, "Doctor Dashboard"),
		Date:        page.Filter.Date,
		PatientName: page.Filter.PatientName,
		Table:       render.AppointmentRows(page.Appointments, page.Err),
	})
}

// Rows renders only the table body.
func (h *DoctorHandler) Rows(c echo.Context) error {
	page, err := h.appointments.Load(c.Request().Context(), CurrentSession(c), h.appointmentFilter(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDate) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.UserMessage(err))
		}
		return jsonError(err)
	}
	return c.Render(http.StatusOK, "patient_rows", render.AppointmentRows(page.Appointments, page.Err))
}
