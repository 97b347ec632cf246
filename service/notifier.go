package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier delivers one-time passwords
type Notifier interface {
	SendEmailOTP(ctx context.Context, email, code string, ttl time.Duration) error
	SendSMSOTP(ctx context.Context, phone, code string, ttl time.Duration) error
}

// LogNotifier writes OTP deliveries to the log instead of sending them.
// RevealCodes includes the code itself, for local development only.
type LogNotifier struct {
	RevealCodes bool
}

func (n LogNotifier) SendEmailOTP(_ context.Context, email, code string, ttl time.Duration) error {
	n.log("email", email, code, ttl)
	return nil
}

func (n LogNotifier) SendSMSOTP(_ context.Context, phone, code string, ttl time.Duration) error {
	n.log("sms", phone, code, ttl)
	return nil
}

func (n LogNotifier) log(channel, to, code string, ttl time.Duration) {
	ev := log.Info().Str("channel", channel).Str("to", maskIdentifier(to)).Dur("valid_for", ttl)
	if n.RevealCodes {
		ev = ev.Str("code", code)
	}
	ev.Msg("OTP issued")
}

// maskIdentifier keeps the first two and last two characters
func maskIdentifier(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return "****"
	}
	masked := make([]rune, len(r))
	for i := range r {
		if i < 2 || i >= len(r)-2 || r[i] == '@' {
			masked[i] = r[i]
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}
