package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"context"
)

// MailClient is satisfied by the Resend client.
type MailClient interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}
