package mailjet

// Wire types for the v3.1 send API.

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Bcc      []address `json:"Bcc,omitempty"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	HTMLPart string    `json:"HTMLPart"`
	ReplyTo  *address  `json:"ReplyTo,omitempty"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

type apiError struct {
	ErrorIdentifier string   `json:"ErrorIdentifier"`
	ErrorCode       string   `json:"ErrorCode"`
	StatusCode      int      `json:"StatusCode"`
	ErrorMessage    string   `json:"ErrorMessage"`
	ErrorRelatedTo  []string `json:"ErrorRelatedTo"`
}

type recipientResult struct {
	Email       string `json:"Email"`
	MessageUUID string `json:"MessageUUID"`
	MessageID   int64  `json:"MessageID"`
	MessageHref string `json:"MessageHref"`
}

type messageResult struct {
	Status   string            `json:"Status"`
	CustomID string            `json:"CustomID"`
	To       []recipientResult `json:"To"`
	Bcc      []recipientResult `json:"Bcc"`
	Errors   []apiError        `json:"Errors"`
}

type sendResponse struct {
	// Set when the whole request is rejected, e.g. on bad credentials.
	ErrorIdentifier string `json:"ErrorIdentifier"`
	ErrorCode       string `json:"ErrorCode"`
	StatusCode      int    `json:"StatusCode"`
	ErrorMessage    string `json:"ErrorMessage"`

	Messages []messageResult `json:"Messages"`
}
