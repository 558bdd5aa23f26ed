package dto

// ContactRequest is a submission from the public contact form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactStatusRequest moves a message through the handling states.
type ContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing resolved"`
}
