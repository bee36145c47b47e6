package services

import (
	"context"

	"github.com/freshdeal/account-service/internal/logging"
)

// Mailer dispatches a one-time code to an address. Delivery backends live
// outside this service; the orchestrator only cares whether dispatch
// succeeded.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// LogMailer writes the code to the log instead of sending it. Used in
// development and in deployments without an email provider.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log.With("module", "mailer")}
}

func (m *LogMailer) SendOTP(ctx context.Context, email, code string) error {
	m.log.Info(ctx, "verification code issued", "email", email, "code", code)
	return nil
}
