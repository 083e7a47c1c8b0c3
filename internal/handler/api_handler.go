package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"clinicportal/internal/model"
	"clinicportal/internal/service"
)

// APIHandler serves the JSON endpoints for scripted clients.
type APIHandler struct {
	doctors      service.DoctorService
	appointments service.AppointmentService
	audit        service.AuditService
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(doctors service.DoctorService, appointments service.AppointmentService, audit service.AuditService) *APIHandler {
	return &APIHandler{doctors: doctors, appointments: appointments, audit: audit}
}

// AppointmentsResponse is a doctor's appointment table in JSON.
type AppointmentsResponse struct {
	Date         string              `json:"date"`
	PatientName  string              `json:"patient_name,omitempty"`
	Appointments []model.Appointment `json:"appointments"`
}

// ListDoctors godoc
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {object} model.DoctorList
// @Router /doctors [get]
func (h *APIHandler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, model.DoctorList{Doctors: h.doctors.List(c.Request().Context()).Doctors})
}

// FilterDoctors godoc
// @Summary Filter doctors by name, time of day and specialty
// @Description Empty parameters do not constrain the result.
// @Tags doctors
// @Produce json
// @Param name query string false "Doctor name"
// @Param time query string false "AM or PM"
// @Param specialty query string false "Specialty"
// @Success 200 {object} service.DoctorListing
// @Failure 400 {object} errors.ErrorResponse
// @Router /doctors/filter [get]
func (h *APIHandler) FilterDoctors(c echo.Context) error {
	var filter service.DoctorFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}
	return c.JSON(http.StatusOK, h.doctors.Filter(c.Request().Context(), filter))
}

// Appointments godoc
// @Summary List the logged doctor's appointments for one day
// @Tags appointments
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, today when empty"
// @Param name query string false "Patient name"
// @Success 200 {object} AppointmentsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *APIHandler) Appointments(c echo.Context) error {
	var filter service.AppointmentFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}

	page, err := h.appointments.Load(c.Request().Context(), CurrentSession(c), filter)
	if err != nil {
		return jsonError(err)
	}
	if page.Err != nil {
		return jsonError(page.Err)
	}
	return c.JSON(http.StatusOK, AppointmentsResponse{
		Date:         page.Filter.Date,
		PatientName:  page.Filter.PatientName,
		Appointments: page.Appointments,
	})
}

// AuditLog godoc
// @Summary List recent privileged actions
// @Tags audit
// @Produce json
// @Param limit query int false "Number of entries, at most 200"
// @Success 200 {array} model.AuditEntry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /audit [get]
func (h *APIHandler) AuditLog(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		return jsonError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
