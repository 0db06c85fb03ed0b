package mailjet

import "time"

// DefaultURL is the Mailjet v3.1 send endpoint.
const DefaultURL = "https://api.mailjet.com/v3.1/send"

// Config holds Mailjet credentials and transport settings.
type Config struct {
	PublicKey  string
	PrivateKey string
	URL        string
	Timeout    time.Duration
}
