package contact

import (
	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/mailer"
)

// Fallback addresses used when the environment leaves them unset.
const (
	DefaultRecipientEmail = "events@harvesttablecatering.com"
	DefaultBCCEmail       = "bookings@harvesttablecatering.com"
	DefaultSenderEmail    = "noreply@harvesttablecatering.com"
	DefaultSenderName     = "Harvest Table Catering Website"
)

// Addresses are the mailboxes a notification is sent from and to.
type Addresses struct {
	Recipient  string
	BCC        string
	Sender     string
	SenderName string
}

// AddressesFromConfig reads the configured addresses and fills the gaps with defaults.
func AddressesFromConfig(cfg config.MailConfig) Addresses {
	return Addresses{
		Recipient:  cfg.RecipientEmail,
		BCC:        cfg.BCCEmail,
		Sender:     cfg.SenderEmail,
		SenderName: cfg.SenderName,
	}.withDefaults()
}

func (a Addresses) withDefaults() Addresses {
	a.Recipient = orDefault(a.Recipient, DefaultRecipientEmail)
	a.BCC = orDefault(a.BCC, DefaultBCCEmail)
	a.Sender = orDefault(a.Sender, DefaultSenderEmail)
	a.SenderName = orDefault(a.SenderName, DefaultSenderName)
	return a
}

func (a Addresses) from() mailer.Address {
	return mailer.Address{Email: a.Sender, Name: a.SenderName}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
