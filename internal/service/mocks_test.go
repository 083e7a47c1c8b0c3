package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clinicportal/internal/apiclient"
	"clinicportal/internal/model"
)

// MockBackend is a mock implementation of apiclient.Backend.
type MockBackend struct {
	mock.Mock
}

var _ apiclient.Backend = (*MockBackend)(nil)

func (m *MockBackend) GetDoctors(ctx context.Context) []model.Doctor {
	args := m.Called(ctx)
	return args.Get(0).([]model.Doctor)
}

func (m *MockBackend) FilterDoctors(ctx context.Context, name, time, specialty string) model.DoctorList {
	args := m.Called(ctx, name, time, specialty)
	return args.Get(0).(model.DoctorList)
}

func (m *MockBackend) SaveDoctor(ctx context.Context, doctor model.Doctor, token string) (apiclient.Result, error) {
	args := m.Called(ctx, doctor, token)
	return args.Get(0).(apiclient.Result), args.Error(1)
}

func (m *MockBackend) DeleteDoctor(ctx context.Context, doctorID int64, token string) (apiclient.Result, error) {
	args := m.Called(ctx, doctorID, token)
	return args.Get(0).(apiclient.Result), args.Error(1)
}

func (m *MockBackend) GetDoctorAvailability(ctx context.Context, user string, doctorID int64, date, token string) ([]string, error) {
	args := m.Called(ctx, user, doctorID, date, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBackend) Login(ctx context.Context, path string, credentials any) (string, error) {
	args := m.Called(ctx, path, credentials)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) SignupPatient(ctx context.Context, signup model.PatientSignup) (apiclient.Result, error) {
	args := m.Called(ctx, signup)
	return args.Get(0).(apiclient.Result), args.Error(1)
}

func (m *MockBackend) GetPatient(ctx context.Context, token string) (*model.Patient, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockBackend) GetPatientAppointments(ctx context.Context, patientID int64, user, token string) ([]model.Appointment, error) {
	args := m.Called(ctx, patientID, user, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockBackend) FilterPatientAppointments(ctx context.Context, condition, name, token string) ([]model.Appointment, error) {
	args := m.Called(ctx, condition, name, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockBackend) GetAppointments(ctx context.Context, date, patientName, token string) ([]model.Appointment, error) {
	args := m.Called(ctx, date, patientName, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockBackend) BookAppointment(ctx context.Context, booking model.BookingRequest, token string) (apiclient.Result, error) {
	args := m.Called(ctx, booking, token)
	return args.Get(0).(apiclient.Result), args.Error(1)
}

// MockSessionManager is a mock implementation of SessionManager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, role model.Role, token, identifier string) (*model.Session, string, error) {
	args := m.Called(ctx, role, token, identifier)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Session), args.String(1), args.Error(2)
}

func (m *MockSessionManager) Destroy(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}

// noAudit is an audit service with the log switched off.
func noAudit() AuditService {
	return NewAuditService(nil)
}

func adminSession() *model.Session {
	return &model.Session{ID: "sid-admin", Token: "admin-token", Role: model.RoleAdmin}
}

func patientSession() *model.Session {
	return &model.Session{ID: "sid-patient", Token: "patient-token", Role: model.RoleLoggedPatient}
}
