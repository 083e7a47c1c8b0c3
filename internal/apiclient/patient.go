package apiclient

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"clinicportal/internal/model"
)

// SignupPatient creates a patient account.
func (c *Client) SignupPatient(ctx context.Context, signup model.PatientSignup) (Result, error) {
	var body messageBody
	status, err := c.do(ctx, "patient signup", http.MethodPost, c.endpoint("patient"), signup, &body)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return Result{Success: false, Message: "Signup failed. Please try again later."}, err
	}
	return Result{Success: ok(status), Message: body.Message}, nil
}

// GetPatient returns the profile of the patient owning token.
func (c *Client) GetPatient(ctx context.Context, token string) (*model.Patient, error) {
	var body struct {
		Patient *model.Patient `json:"patient"`
		Message string         `json:"message"`
	}
	status, err := c.do(ctx, "get patient", http.MethodGet, c.endpoint("patient", token), nil, &body)
	if err != nil {
		return nil, err
	}
	if !ok(status) || body.Patient == nil {
		if ok(status) {
			status = http.StatusNotFound
		}
		return nil, &StatusError{StatusCode: status, Message: body.Message}
	}
	return body.Patient, nil
}

// GetPatientAppointments returns the appointments of a patient. The same backend route
// serves doctors and patients, told apart by user.
func (c *Client) GetPatientAppointments(ctx context.Context, patientID int64, user, token string) ([]model.Appointment, error) {
	target := c.endpoint("patient", strconv.FormatInt(patientID, 10), user, token)

	var list model.AppointmentList
	status, err := c.do(ctx, "patient appointments", http.MethodGet, target, nil, &list)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &StatusError{StatusCode: status}
	}
	if list.Appointments == nil {
		return []model.Appointment{}, nil
	}
	return list.Appointments, nil
}

// FilterPatientAppointments filters the logged patient's appointments by condition
// ("past" or "future") and doctor name. Empty values are sent as the sentinel.
// A non-OK status yields an empty list.
func (c *Client) FilterPatientAppointments(ctx context.Context, condition, name, token string) ([]model.Appointment, error) {
	target := c.endpoint("patient", "filter", orSentinel(condition), orSentinel(name), token)

	var list model.AppointmentList
	status, err := c.do(ctx, "filter patient appointments", http.MethodGet, target, nil, &list)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return []model.Appointment{}, err
	}
	if !ok(status) {
		log.Printf("apiclient: filter patient appointments: status %d", status)
		return []model.Appointment{}, nil
	}
	if list.Appointments == nil {
		return []model.Appointment{}, nil
	}
	return list.Appointments, nil
}
