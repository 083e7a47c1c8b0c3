package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinicportal/internal/apiclient"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// DateLayout is the date form used in filters and backend paths.
const DateLayout = "2006-01-02"

// AppointmentFilter is the doctor dashboard's filter state: one date and an optional
// patient name.
type AppointmentFilter struct {
	Date        string `query:"date" json:"date"`
	PatientName string `query:"name" json:"name"`
}

// AppointmentPage is a loaded appointment table and the filter that produced it. The
// filter carries the exact date string the date picker shows.
type AppointmentPage struct {
	Filter       AppointmentFilter   `json:"filter"`
	Appointments []model.Appointment `json:"appointments"`
	Err          error               `json:"-"`
}

// AppointmentService loads the doctor's appointment table.
type AppointmentService interface {
	Load(ctx context.Context, sess *model.Session, filter AppointmentFilter) (*AppointmentPage, error)
	Today() string
}

type appointmentService struct {
	backend apiclient.Backend
	now     func() time.Time
}

// NewAppointmentService creates a new appointment service. A nil clock uses time.Now.
func NewAppointmentService(backend apiclient.Backend, now func() time.Time) AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &appointmentService{backend: backend, now: now}
}

// Today returns the current date in UTC as YYYY-MM-DD.
func (s *appointmentService) Today() string {
	return s.now().UTC().Format(DateLayout)
}

// Load fetches the appointments matching filter. An empty date means today. A date in
// the wrong form is rejected before any request. Backend failures do not fail Load;
// they are reported in the page so the table can show its error row.
func (s *appointmentService) Load(ctx context.Context, sess *model.Session, filter AppointmentFilter) (*AppointmentPage, error) {
	token, err := tokenOf(sess)
	if err != nil {
		return nil, err
	}

	filter.PatientName = strings.TrimSpace(filter.PatientName)
	filter.Date = strings.TrimSpace(filter.Date)
	if filter.Date == "" {
		filter.Date = s.Today()
	}
	if _, err := time.Parse(DateLayout, filter.Date); err != nil {
		return nil, fmt.Errorf("date %q: %w", filter.Date, apperrors.ErrInvalidDate)
	}

	page := &AppointmentPage{Filter: filter}
	page.Appointments, page.Err = s.backend.GetAppointments(ctx, filter.Date, filter.PatientName, token)
	if page.Appointments == nil {
		page.Appointments = []model.Appointment{}
	}
	return page, nil
}
