package apiclient

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"clinicportal/internal/model"
)

// GetDoctors fetches every doctor. Failures are logged and yield an empty list.
func (c *Client) GetDoctors(ctx context.Context) []model.Doctor {
	var list model.DoctorList
	if _, err := c.do(ctx, "get doctors", http.MethodGet, c.endpoint("doctor"), nil, &list); err != nil {
		log.Printf("apiclient: %v", err)
		return []model.Doctor{}
	}
	if list.Doctors == nil {
		return []model.Doctor{}
	}
	return list.Doctors
}

// FilterDoctors fetches doctors matching name, time and specialty. Empty values are sent
// as the sentinel. A non-OK status or a failed request yields an empty list.
func (c *Client) FilterDoctors(ctx context.Context, name, time, specialty string) model.DoctorList {
	target := c.endpoint("doctor", "filter", orSentinel(name), orSentinel(time), orSentinel(specialty))

	var list model.DoctorList
	status, err := c.do(ctx, "filter doctors", http.MethodGet, target, nil, &list)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return model.DoctorList{Doctors: []model.Doctor{}}
	}
	if !ok(status) {
		log.Printf("apiclient: filter doctors: status %d", status)
		return model.DoctorList{Doctors: []model.Doctor{}}
	}
	if list.Doctors == nil {
		list.Doctors = []model.Doctor{}
	}
	return list
}

// SaveDoctor creates a doctor. The admin token is a path segment, not a header.
func (c *Client) SaveDoctor(ctx context.Context, doctor model.Doctor, token string) (Result, error) {
	var body messageBody
	status, err := c.do(ctx, "save doctor", http.MethodPost, c.endpoint("doctor", "save", token), doctor, &body)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return Result{Success: false, Message: "Failed to save doctor."}, err
	}
	return Result{Success: ok(status), Message: body.Message}, nil
}

// DeleteDoctor removes a doctor. Success follows the response status.
func (c *Client) DeleteDoctor(ctx context.Context, doctorID int64, token string) (Result, error) {
	target := c.endpoint("doctor", "delete", strconv.FormatInt(doctorID, 10), token)

	var body messageBody
	status, err := c.do(ctx, "delete doctor", http.MethodDelete, target, nil, &body)
	if err != nil {
		log.Printf("apiclient: %v", err)
		return Result{Success: false, Message: "Failed to delete doctor."}, err
	}
	return Result{Success: ok(status), Message: body.Message}, nil
}

// GetDoctorAvailability returns the free time slots of a doctor on date (YYYY-MM-DD).
func (c *Client) GetDoctorAvailability(ctx context.Context, user string, doctorID int64, date, token string) ([]string, error) {
	target := c.endpoint("doctor", "availability", user, strconv.FormatInt(doctorID, 10), date, token)

	var body struct {
		Availability []string `json:"availability"`
		Message      string   `json:"message"`
	}
	status, err := c.do(ctx, "doctor availability", http.MethodGet, target, nil, &body)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &StatusError{StatusCode: status, Message: body.Message}
	}
	if body.Availability == nil {
		return []string{}, nil
	}
	return body.Availability, nil
}
