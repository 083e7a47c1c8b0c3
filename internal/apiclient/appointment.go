package apiclient

import (
	"context"
	"log"
	"net/http"

	"clinicportal/internal/model"
)

// GetAppointments returns a doctor's appointments on date (YYYY-MM-DD), narrowed by
// patient name. An empty name is sent as the sentinel.
func (c *Client) GetAppointments(ctx context.Context, date, patientName, token string) ([]model.Appointment, error) {
	target := c.endpoint("appointments", date, orSentinel(patientName), token)

	var body struct {
		model.AppointmentList
		Message string `json:"message"`
	}
	status, err := c.do(ctx, "get appointments", http.MethodGet, target, nil, &body)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &StatusError{StatusCode: status, Message: body.Message}
	}
	if body.Appointments == nil {
		return []model.Appointment{}, nil
	}
	return body.Appointments, nil
}

// BookAppointment books an appointment for the patient owning token.
func (c *Client) BookAppointment(ctx context.Context, booking model.BookingRequest, token string) (Result, error) {
	var body messageBody
	status, err := c.do(ctx, "book appointment", http.MethodPost, c.endpoint("appointments", token), booking, &body)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return Result{Success: false, Message: "Failed to book appointment."}, err
	}
	return Result{Success: ok(status), Message: body.Message}, nil
}
