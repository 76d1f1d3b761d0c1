// Package notify delivers verification codes to users.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// LogSender writes codes to the log instead of an SMS gateway or mail
// server. It is the sender used in development and tests.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a log-backed sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "notify")}
}

// SendCode delivers code to ch.
func (s *LogSender) SendCode(ctx context.Context, ch domain.Channel, code string) error {
	switch ch.Kind {
	case domain.ChannelPhone:
		s.log.InfoContext(ctx, "sms sent",
			slog.String("to", ch.Value),
			slog.String("template", smsTemplate),
			slog.String("code", code))
	case domain.ChannelEmail:
		s.log.InfoContext(ctx, "email sent",
			slog.String("to", ch.Value),
			slog.String("subject", "Verification code"),
			slog.String("code", code))
	default:
		return fmt.Errorf("notify: unsupported channel %q", ch.Kind)
	}
	return nil
}

const smsTemplate = "verify"
