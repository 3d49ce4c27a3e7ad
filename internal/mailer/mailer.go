// Package mailer delivers password-reset one-time codes over SMTP.
//
// When the SMTP credentials are not configured the mailer runs disabled:
// sends succeed without touching the network and the code is logged instead,
// which keeps local development working without a mail account.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
)

// Mailer is the delivery collaborator of the password-reset flow.
type Mailer interface {
	// IsEnabled reports whether the SMTP transport is configured.
	IsEnabled() bool

	// SendResetCode delivers the one-time code to the given address.
	SendResetCode(to, code string) error
}

// client provides an SMTP client for sending mail from a preset address.
//
// client implements the Mailer interface.
type client struct {
	smtp        *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
	logger      *logger.Logger
}

// New returns a new client that implements Mailer. Mail is considered
// disabled if any of the required credentials are missing.
func New(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		log.Info().Msg("mail: DISABLED")
		return &client{disabled: true, logger: log}, nil
	}

	h := fmt.Sprintf("smtps://%v:%v@%v", cfg.User, cfg.Password, cfg.Host)
	u, err := url.Parse(h)
	if err != nil {
		return nil, fmt.Errorf("parse mail host: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	a, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parse mail address: %w", err)
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.SkipVerify,
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("setup smtp client: %w", err)
	}

	log.Info().Str("host", cfg.Host).Str("from", a.Address).Msg("mail: enabled")

	return &client{
		smtp:        smtp,
		mailName:    a.Name,
		mailAddress: a.Address,
		logger:      log,
	}, nil
}

// IsEnabled returns whether the mail transport is enabled.
//
// This function satisfies the Mailer interface.
func (c *client) IsEnabled() bool {
	return !c.disabled
}

// SendResetCode delivers the password-reset code to the recipient. In
// disabled mode the code is logged and the send reports success, matching
// the development fallback of the product.
//
// This function satisfies the Mailer interface.
func (c *client) SendResetCode(to, code string) error {
	if c.disabled {
		c.logger.Info().Str("to", to).Str("code", code).Msg("mail disabled, reset code logged")
		return nil
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)

	msg := goemail.NewMessage(c.mailAddress, "Password Reset Code", body)
	msg.SetName(c.mailName)
	msg.AddTo(to)

	if err := c.smtp.Send(msg); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}

	return nil
}
