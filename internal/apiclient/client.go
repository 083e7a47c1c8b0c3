package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// Sentinel is the path value the backend reads as "no constraint on this field".
const Sentinel = "null"

const maxResponseBytes = 4 << 20

// Backend is the set of clinic backend calls the portal makes.
type Backend interface {
	GetDoctors(ctx context.Context) []model.Doctor
	FilterDoctors(ctx context.Context, name, time, specialty string) model.DoctorList
	SaveDoctor(ctx context.Context, doctor model.Doctor, token string) (Result, error)
	DeleteDoctor(ctx context.Context, doctorID int64, token string) (Result, error)
	GetDoctorAvailability(ctx context.Context, user string, doctorID int64, date, token string) ([]string, error)

	Login(ctx context.Context, path string, credentials any) (string, error)

	SignupPatient(ctx context.Context, signup model.PatientSignup) (Result, error)
	GetPatient(ctx context.Context, token string) (*model.Patient, error)
	GetPatientAppointments(ctx context.Context, patientID int64, user, token string) ([]model.Appointment, error)
	FilterPatientAppointments(ctx context.Context, condition, name, token string) ([]model.Appointment, error)

	GetAppointments(ctx context.Context, date, patientName, token string) ([]model.Appointment, error)
	BookAppointment(ctx context.Context, booking model.BookingRequest, token string) (Result, error)
}

// Result is the outcome of a mutating call.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match not-found answers with errors.Is.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	return nil
}

type messageBody struct {
	Message string `json:"message"`
}

// Client talks to the clinic backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Backend = (*Client)(nil)

// New creates a client for the API rooted at baseURL.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// orSentinel substitutes the sentinel for an empty filter value.
func orSentinel(v string) string {
	if strings.TrimSpace(v) == "" {
		return Sentinel
	}
	return v
}

// endpoint joins escaped path segments onto the base URL.
func (c *Client) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// do sends a JSON request and decodes the JSON response into out when one is given.
// op names the call in errors; URLs are never included since most carry a token.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return 0, fmt.Errorf("%s: %w: %v", op, apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%s: read body: %w", op, err)
	}
	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%s: decode body: %w", op, err)
		}
	}
	return resp.StatusCode, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
