package notify

import (
	"context"
	"log/slog"

	"permit-quotation-service/internal/usecase/commands"
)

// LogSender records notifications in the log instead of delivering them.
type LogSender struct {
	from string
}

func NewLogSender(from string) *LogSender {
	return &LogSender{from: from}
}

func (s *LogSender) Send(_ context.Context, n commands.Notification) (*commands.DeliveryReceipt, error) {
	messageID := newMessageID(s.from)
	names := make([]string, 0, len(n.Attachments))
	for _, a := range n.Attachments {
		names = append(names, a.Filename)
	}
	slog.Info("email suppressed (log mode)",
		"to", n.To,
		"cc", n.Cc,
		"subject", n.Subject,
		"message_id", messageID,
		"attachments", names)
	slog.Debug("email body", "message_id", messageID, "text", n.Text)
	return &commands.DeliveryReceipt{MessageID: messageID}, nil
}
