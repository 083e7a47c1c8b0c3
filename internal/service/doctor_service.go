package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"clinicportal/internal/apiclient"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// DoctorFilter holds the doctor filter inputs. Empty fields are sent as the "no
// constraint" sentinel.
type DoctorFilter struct {
	Name      string `query:"name" form:"name" json:"name"`
	Time      string `query:"time" form:"time" json:"time"`
	Specialty string `query:"specialty" form:"specialty" json:"specialty"`
}

// DoctorListing is a list of doctors and whether a filter produced it.
type DoctorListing struct {
	Doctors  []model.Doctor `json:"doctors"`
	Filtered bool           `json:"filtered"`
}

// DoctorForm is the admin's add-doctor form.
type DoctorForm struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	Password  string `form:"password"`
	Specialty string `form:"specialty"`
	Times     string `form:"times"`
}

// Doctor converts the form into the record sent to the backend. Availability is split
// on commas as typed; entries are neither trimmed nor checked.
func (f DoctorForm) Doctor() model.Doctor {
	return model.Doctor{
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		Password:       f.Password,
		Specialty:      f.Specialty,
		AvailableTimes: strings.Split(f.Times, ","),
	}
}

// Messages shown after doctor management actions.
const (
	MsgAdminSessionExpired = "Admin session expired. Please log in again."
	MsgDoctorAdded         = "Doctor added successfully."
	MsgAddDoctorFailed     = "Failed to add doctor."
	MsgAddDoctorError      = "Error adding doctor."
	MsgDoctorDeleted       = "Doctor deleted successfully."
	MsgDeleteDoctorFailed  = "Failed to delete doctor."
)

// DoctorService handles doctor listing and management.
type DoctorService interface {
	List(ctx context.Context) DoctorListing
	Filter(ctx context.Context, filter DoctorFilter) DoctorListing
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Add(ctx context.Context, sess *model.Session, form DoctorForm) (string, error)
	Delete(ctx context.Context, sess *model.Session, id int64) (string, error)
}

type doctorService struct {
	backend apiclient.Backend
	audit   AuditService
}

// NewDoctorService creates a new doctor service.
func NewDoctorService(backend apiclient.Backend, audit AuditService) DoctorService {
	return &doctorService{backend: backend, audit: audit}
}

// List returns every doctor.
func (s *doctorService) List(ctx context.Context) DoctorListing {
	return DoctorListing{Doctors: s.backend.GetDoctors(ctx)}
}

// Filter returns the doctors matching filter. The result is always a filtered listing,
// so no matches show the empty message even when every field was left blank.
func (s *doctorService) Filter(ctx context.Context, filter DoctorFilter) DoctorListing {
	list := s.backend.FilterDoctors(ctx, strings.TrimSpace(filter.Name), filter.Time, filter.Specialty)
	return DoctorListing{Doctors: list.Doctors, Filtered: true}
}

// Get finds one doctor in the listing. The backend has no single doctor endpoint.
func (s *doctorService) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	for _, d := range s.backend.GetDoctors(ctx) {
		if d.ID == id {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, fmt.Errorf("doctor %d: %w", id, apperrors.ErrNotFound)
}

// Add creates a doctor. Without an admin token no request is made.
func (s *doctorService) Add(ctx context.Context, sess *model.Session, form DoctorForm) (string, error) {
	token, err := tokenOf(sess)
	if err != nil {
		return "", apperrors.WithMessage(err, MsgAdminSessionExpired)
	}

	result, err := s.backend.SaveDoctor(ctx, form.Doctor(), token)
	switch {
	case err != nil:
		err = apperrors.WithMessage(err, MsgAddDoctorError)
	case !result.Success:
		err = apperrors.WithMessage(apperrors.ErrSaveFailed, orDefault(result.Message, MsgAddDoctorFailed))
	}
	s.audit.Record(ctx, sess, model.AuditDoctorAdd, form.Email, err)
	if err != nil {
		return "", err
	}
	return MsgDoctorAdded, nil
}

// Delete removes a doctor. Without an admin token no request is made.
func (s *doctorService) Delete(ctx context.Context, sess *model.Session, id int64) (string, error) {
	token, err := tokenOf(sess)
	if err != nil {
		return "", apperrors.WithMessage(err, MsgAdminSessionExpired)
	}

	result, err := s.backend.DeleteDoctor(ctx, id, token)
	switch {
	case err != nil:
		err = apperrors.WithMessage(err, MsgDeleteDoctorFailed)
	case !result.Success:
		err = apperrors.WithMessage(apperrors.ErrSaveFailed, MsgDeleteDoctorFailed)
	}
	s.audit.Record(ctx, sess, model.AuditDoctorDelete, strconv.FormatInt(id, 10), err)
	if err != nil {
		return "", err
	}
	return MsgDoctorDeleted, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
