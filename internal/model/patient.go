package model

// Patient is the patient shape used by the portal. Prescription is only set when the
// record was assembled from an appointment.
type Patient struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address,omitempty"`
	Prescription string `json:"prescription,omitempty"`
}

// PatientSignup is the payload of the patient signup endpoint.
type PatientSignup struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Address  string `json:"address" form:"address" validate:"required"`
}
