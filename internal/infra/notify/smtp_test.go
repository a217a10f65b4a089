//go:build unit

package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func notification() commands.Notification {
	return commands.Notification{
		To:      "maria@example.com",
		Cc:      []string{"staff@example.com"},
		Subject: "Your quotation",
		HTML:    "<p>Hello Maria</p>",
		Text:    "Hello Maria",
		Attachments: []commands.Attachment{
			{Filename: "quotation.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 fake")},
		},
	}
}

func TestSMTPSender_Send(t *testing.T) {
	d := &recordingDialer{}
	s := &SMTPSender{dialer: d, from: "quotes@consulting.example"}

	receipt, err := s.Send(context.Background(), notification())

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.True(t, strings.HasSuffix(receipt.MessageID, "@consulting.example>"))

	var buf bytes.Buffer
	_, err = d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Message-ID: "+receipt.MessageID)
	assert.Contains(t, raw, "Cc: staff@example.com")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, `filename="quotation.pdf"`)
	assert.Contains(t, raw, "Content-Type: application/pdf")
}

func TestSMTPSender_DeliveryFailureIsExternal(t *testing.T) {
	s := &SMTPSender{dialer: &recordingDialer{err: errors.New("connection refused")}, from: "quotes@consulting.example"}

	_, err := s.Send(context.Background(), notification())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrExternalProvider))
}

func TestSMTPSender_RequiresRecipient(t *testing.T) {
	d := &recordingDialer{}
	s := &SMTPSender{dialer: d, from: "quotes@consulting.example"}
	n := notification()
	n.To = " "

	_, err := s.Send(context.Background(), n)

	require.Error(t, err)
	assert.Empty(t, d.sent)
}

func TestNewMessageID(t *testing.T) {
	assert.True(t, strings.HasSuffix(newMessageID("Quotes <quotes@firm.example>"), "@firm.example>"))
	assert.True(t, strings.HasSuffix(newMessageID("no-at-sign"), "@localhost>"))
}

func TestLogSender_Send(t *testing.T) {
	receipt, err := NewLogSender("quotes@firm.example").Send(context.Background(), notification())

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.MessageID)
}
