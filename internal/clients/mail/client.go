package mail

import (
	"context"
	"errors"
	"fmt"

	"ialynk-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, errors.New("resend API key is required")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendEmail sends an HTML email from the default sender address and returns the Resend id.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
