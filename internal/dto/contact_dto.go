package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required,min=10"`
}
