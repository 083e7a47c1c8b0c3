package model

import "time"

// AuditEntry records a privileged action performed through the portal.
type AuditEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"size:36;index"`
	Role      string    `json:"role" gorm:"size:20;index"`
	Action    string    `json:"action" gorm:"size:50;not null;index"`
	Subject   string    `json:"subject" gorm:"size:255"`
	Success   bool      `json:"success"`
	Message   string    `json:"message" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// Audit actions.
const (
	AuditLogin         = "login"
	AuditLogout        = "logout"
	AuditDoctorAdd     = "doctor.add"
	AuditDoctorDelete  = "doctor.delete"
	AuditPatientSignup = "patient.signup"
	AuditBooking       = "appointment.book"
)
