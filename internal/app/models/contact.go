package models

import "time"

// ContactStatus tracks the handling state of a contact message.
type ContactStatus string

const (
	ContactPending    ContactStatus = "pending"
	ContactProcessing ContactStatus = "processing"
	ContactResolved   ContactStatus = "resolved"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     string        `json:"phone,omitempty" db:"phone"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
