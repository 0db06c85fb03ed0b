package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/osa911/cateringform/internal/contact"
	"github.com/osa911/cateringform/internal/service"
)

func addSubmissionFlags(fs *pflag.FlagSet) {
	fs.String("name", "", "Submitter name")
	fs.String("email", "", "Submitter email address")
	fs.String("phone", "", "Submitter phone number")
	fs.String("service", "", "Requested catering service")
	fs.String("event-date", "", "Event date")
	fs.String("message", "", "Free-form message")
	fs.String("allergies", "", "Dietary restrictions or allergies")
}

func submissionFromFlags(fs *pflag.FlagSet) *contact.Submission {
	get := func(name string) string {
		v, _ := fs.GetString(name)
		return v
	}
	return &contact.Submission{
		Name:      get("name"),
		Email:     get("email"),
		Phone:     get("phone"),
		Service:   get("service"),
		EventDate: get("event-date"),
		Message:   get("message"),
		Allergies: get("allergies"),
	}
}

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a submission through the configured mail provider",
		Long: `Build a contact form submission from flags and run it through the same
handler the HTTP server uses. The JSON response is printed to stdout and the
command fails unless the provider accepted the message.

Example:
  cateringform send --name "Ada" --email ada@example.com --service Wedding`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			sender, err := service.NewMailSender(cfg.Mail)
			if err != nil {
				return err
			}

			body, err := json.Marshal(submissionFromFlags(cmd.Flags()))
			if err != nil {
				return err
			}

			h := contact.NewHandler(sender, contact.AddressesFromConfig(cfg.Mail), contact.WithLogger(logger))

			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = fmt.Sprintf(" Sending via %s...", sender.Name())
			s.Start()
			resp := h.Handle(cmd.Context(), contact.Request{Body: string(body), RequestID: "cli"})
			s.Stop()

			if err := writeJSON(cmd.OutOrStdout(), resp.Body); err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				return fmt.Errorf("submission failed with status %d", resp.Status)
			}
			return nil
		},
	}

	addSubmissionFlags(cmd.Flags())
	return cmd
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the notification email without sending it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			sub := submissionFromFlags(cmd.Flags())
			msg := contact.NewHandler(nil, contact.AddressesFromConfig(cfg.Mail)).BuildMessage(sub)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, msg)
			case "text", "html":
				fmt.Fprintf(out, "From: %s\n", msg.From.String())
				fmt.Fprintf(out, "To: %s\n", msg.To[0].Email)
				fmt.Fprintf(out, "Bcc: %s\n", msg.Bcc[0].Email)
				fmt.Fprintf(out, "Reply-To: %s\n", msg.ReplyTo.String())
				fmt.Fprintf(out, "Subject: %s\n\n", msg.Subject)
				if format == "html" {
					fmt.Fprintln(out, msg.HTMLPart)
				} else {
					fmt.Fprintln(out, msg.TextPart)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q, expected text, html or json", format)
			}
		},
	}

	addSubmissionFlags(cmd.Flags())
	cmd.Flags().String("format", "text", "Output format: text, html or json")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
