package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers notifications through an SMTP relay.
type SMTPSender struct {
	dialer mailer
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(ctx context.Context, n commands.Notification) (*commands.DeliveryReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "send cancelled")
	}
	if strings.TrimSpace(n.To) == "" {
		return nil, errs.New("notification has no recipient")
	}

	messageID := newMessageID(s.from)
	m := buildMessage(s.from, messageID, n)
	if err := s.dialer.DialAndSend(m); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "smtp delivery to %s failed", n.To), errs.ErrExternalProvider)
	}

	slog.Info("email sent",
		"to", n.To,
		"subject", n.Subject,
		"message_id", messageID,
		"attachments", len(n.Attachments))
	return &commands.DeliveryReceipt{MessageID: messageID}, nil
}

func buildMessage(from, messageID string, n commands.Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", n.To)
	if len(n.Cc) > 0 {
		m.SetHeader("Cc", n.Cc...)
	}
	m.SetHeader("Subject", n.Subject)
	m.SetHeader("Message-ID", messageID)

	switch {
	case n.Text != "" && n.HTML != "":
		m.SetBody("text/plain", n.Text)
		m.AddAlternative("text/html", n.HTML)
	case n.HTML != "":
		m.SetBody("text/html", n.HTML)
	default:
		m.SetBody("text/plain", n.Text)
	}

	for _, a := range n.Attachments {
		data := a.Data
		m.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return m
}

func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = strings.TrimSuffix(from[at+1:], ">")
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
