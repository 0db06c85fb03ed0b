package contact

import (
	"fmt"
	"strings"

	"github.com/osa911/cateringform/internal/api/sanitization"
)

// NoMessagePlaceholder stands in for an empty message field.
const NoMessagePlaceholder = "No message provided"

const subjectPrefix = "New Catering Inquiry: "

// Subject builds the notification subject line.
func Subject(sub *Submission) string {
	return subjectPrefix + sub.Service
}

func messageOrPlaceholder(sub *Submission) string {
	if sub.Message == "" {
		return NoMessagePlaceholder
	}
	return sub.Message
}

// RenderHTML renders the HTML notification. Optional fields are left out when empty.
func RenderHTML(sub *Submission) string {
	var b strings.Builder

	b.WriteString("<h2>New Catering Inquiry</h2>\n")
	writeHTMLField(&b, "Name", sub.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> <a href=\"mailto:%[1]s\">%[1]s</a></p>\n", sanitization.SanitizeString(sub.Email))
	if sub.Phone != "" {
		writeHTMLField(&b, "Phone", sub.Phone)
	}
	writeHTMLField(&b, "Service", sub.Service)
	if sub.EventDate != "" {
		writeHTMLField(&b, "Event Date", sub.EventDate)
	}
	if sub.Allergies != "" {
		writeHTMLField(&b, "Allergies / Dietary Requirements", sub.Allergies)
	}
	b.WriteString("<h3>Message</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", sanitization.SanitizeMultiline(messageOrPlaceholder(sub)))

	return b.String()
}

func writeHTMLField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", label, sanitization.SanitizeString(value))
}

// RenderText renders the plaintext notification.
func RenderText(sub *Submission) string {
	var b strings.Builder

	b.WriteString("New Catering Inquiry\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Service: %s\n", sub.Service)
	if sub.EventDate != "" {
		fmt.Fprintf(&b, "Event Date: %s\n", sub.EventDate)
	}
	if sub.Allergies != "" {
		fmt.Fprintf(&b, "Allergies / Dietary Requirements: %s\n", sub.Allergies)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", messageOrPlaceholder(sub))

	return b.String()
}
