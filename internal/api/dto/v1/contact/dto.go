package contact

// ContactRequest represents a catering contact form submission.
// Only name, email and service are required.
type ContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Service   string `json:"service" validate:"required"`
	EventDate string `json:"event-date"`
	Message   string `json:"message"`
	Allergies string `json:"allergies"`
}
