package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicportal/internal/apiclient"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

func TestDoctorService_ListAndFilter(t *testing.T) {
	ctx := context.Background()
	all := []model.Doctor{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Bob"}}

	backend := new(MockBackend)
	backend.On("GetDoctors", mock.Anything).Return(all)
	backend.On("FilterDoctors", mock.Anything, "Ada", "AM", "").Return(model.DoctorList{Doctors: all[:1]})
	backend.On("FilterDoctors", mock.Anything, "", "", "").Return(model.DoctorList{Doctors: []model.Doctor{}})

	service := NewDoctorService(backend, noAudit())

	listing := service.List(ctx)
	assert.False(t, listing.Filtered)
	assert.Equal(t, all, listing.Doctors)

	filtered := service.Filter(ctx, DoctorFilter{Name: "  Ada ", Time: "AM"})
	assert.True(t, filtered.Filtered)
	assert.Equal(t, all[:1], filtered.Doctors)

	none := service.Filter(ctx, DoctorFilter{})
	assert.True(t, none.Filtered)
	assert.Empty(t, none.Doctors)

	backend.AssertExpectations(t)
}

func TestDoctorService_Get(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GetDoctors", mock.Anything).Return([]model.Doctor{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Bob"}})
	service := NewDoctorService(backend, noAudit())

	doctor, err := service.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", doctor.Name)

	_, err = service.Get(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDoctorForm_Doctor(t *testing.T) {
	form := DoctorForm{
		Name:      "Ada",
		Email:     "ada@clinic.test",
		Phone:     "555",
		Password:  "pw",
		Specialty: "Cardiologist",
		Times:     "09:00-10:00, 10:00-11:00,",
	}
	doctor := form.Doctor()

	assert.Equal(t, []string{"09:00-10:00", " 10:00-11:00", ""}, doctor.AvailableTimes)
	assert.Equal(t, "Cardiologist", doctor.Specialty)
	assert.Equal(t, "pw", doctor.Password)
}

func TestDoctorService_Add(t *testing.T) {
	form := DoctorForm{Name: "Ada", Email: "ada@clinic.test", Phone: "555", Password: "pw", Specialty: "Cardiologist", Times: "09:00-10:00"}

	tests := []struct {
		name          string
		session       *model.Session
		setupMock     func(*MockBackend)
		expectedError error
		expectedMsg   string
	}{
		{
			name:    "saved",
			session: adminSession(),
			setupMock: func(b *MockBackend) {
				b.On("SaveDoctor", mock.Anything, form.Doctor(), "admin-token").Return(apiclient.Result{Success: true, Message: "ok"}, nil)
			},
			expectedMsg: MsgDoctorAdded,
		},
		{
			name:    "rejected with message",
			session: adminSession(),
			setupMock: func(b *MockBackend) {
				b.On("SaveDoctor", mock.Anything, mock.Anything, "admin-token").Return(apiclient.Result{Message: "Doctor already exists"}, nil)
			},
			expectedError: apperrors.ErrSaveFailed,
			expectedMsg:   "Doctor already exists",
		},
		{
			name:    "rejected without message",
			session: adminSession(),
			setupMock: func(b *MockBackend) {
				b.On("SaveDoctor", mock.Anything, mock.Anything, "admin-token").Return(apiclient.Result{}, nil)
			},
			expectedError: apperrors.ErrSaveFailed,
			expectedMsg:   MsgAddDoctorFailed,
		},
		{
			name:    "transport failure",
			session: adminSession(),
			setupMock: func(b *MockBackend) {
				b.On("SaveDoctor", mock.Anything, mock.Anything, "admin-token").
					Return(apiclient.Result{Message: "Failed to save doctor."}, fmt.Errorf("save doctor: %w", apperrors.ErrBackendUnavailable))
			},
			expectedError: apperrors.ErrBackendUnavailable,
			expectedMsg:   MsgAddDoctorError,
		},
		{
			name:          "no session",
			session:       nil,
			setupMock:     func(*MockBackend) {},
			expectedError: apperrors.ErrSessionExpired,
			expectedMsg:   MsgAdminSessionExpired,
		},
		{
			name:          "empty token",
			session:       &model.Session{ID: "s", Role: model.RoleAdmin},
			setupMock:     func(*MockBackend) {},
			expectedError: apperrors.ErrSessionExpired,
			expectedMsg:   MsgAdminSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			tt.setupMock(backend)

			service := NewDoctorService(backend, noAudit())
			msg, err := service.Add(context.Background(), tt.session, form)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, tt.expectedMsg, apperrors.UserMessage(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedMsg, msg)
			}
			backend.AssertExpectations(t)
		})
	}
}

func TestDoctorService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("DeleteDoctor", mock.Anything, int64(7), "admin-token").Return(apiclient.Result{Success: true}, nil)

		msg, err := NewDoctorService(backend, noAudit()).Delete(context.Background(), adminSession(), 7)
		require.NoError(t, err)
		assert.Equal(t, MsgDoctorDeleted, msg)
		backend.AssertExpectations(t)
	})

	t.Run("backend refuses", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("DeleteDoctor", mock.Anything, int64(7), "admin-token").Return(apiclient.Result{Message: "Doctor not found"}, nil)

		_, err := NewDoctorService(backend, noAudit()).Delete(context.Background(), adminSession(), 7)
		assert.ErrorIs(t, err, apperrors.ErrSaveFailed)
		assert.Equal(t, MsgDeleteDoctorFailed, apperrors.UserMessage(err))
	})

	t.Run("without token no request is made", func(t *testing.T) {
		backend := new(MockBackend)

		_, err := NewDoctorService(backend, noAudit()).Delete(context.Background(), &model.Session{Role: model.RoleAdmin}, 7)
		assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
		assert.Equal(t, MsgAdminSessionExpired, apperrors.UserMessage(err))
		backend.AssertNotCalled(t, "DeleteDoctor", mock.Anything, mock.Anything, mock.Anything)
	})
}
