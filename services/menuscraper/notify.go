package menuscraper

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

type Notifier struct {
	config *SmtpConfig
}

func NewNotifier(config *SmtpConfig) Notifier {
	return Notifier{config: config}
}

// SubmissionFailed emails the failure cause to the configured
// recipient. With no smtp configuration this is a no-op, log output is
// the only failure surface then.
func (n Notifier) SubmissionFailed(cause string) error {
	if n.config == nil {
		return nil
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Lunchboard <%s>", n.config.EmailAddress)
	mail.To = []string{n.config.Recipient}
	mail.Subject = "Menu extraction failed"
	mail.Text = []byte(fmt.Sprintf(
		"Today's menu batch could not be delivered to the backend.\n\nCause: %s\n",
		cause,
	))

	addr := fmt.Sprintf("%s:%d", n.config.Server, n.config.Port)
	err := mail.Send(addr, smtp.PlainAuth("", n.config.EmailAddress, n.config.Password, n.config.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(addr, nil)
	}
	return err
}
