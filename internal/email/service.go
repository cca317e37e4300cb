package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"ialynk-server/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

const callSummaryTemplate = "call_summary"

// EmailService renders and sends the agency notifications
type EmailService struct {
	mailClient MailClient
	logger     *observability.Logger
	templates  map[string]*template.Template
}

// CallSummary is one answered turn of a phone call
type CallSummary struct {
	From       string
	To         string
	Provider   string
	Transcript string
	Reply      string
	OccurredAt time.Time
	CallLink   string
}

func New(mailClient MailClient, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient: mailClient,
		logger:     logger,
		templates: map[string]*template.Template{
			callSummaryTemplate: template.Must(template.New(callSummaryTemplate).Parse(`
			<html>
				<body>
					<h1>Nouvel appel de {{if .From}}{{.From}}{{else}}numéro masqué{{end}}</h1>
					<p>Reçu le {{.OccurredAt.Format "02/01/2006 à 15:04"}} sur {{.To}} ({{.Provider}}).</p>
					<h2>Message de l'appelant</h2>
					<blockquote>{{.Transcript}}</blockquote>
					<h2>Réponse de l'assistant</h2>
					<blockquote>{{.Reply}}</blockquote>
					{{if .CallLink}}<p><a href="{{.CallLink}}" style="background-color: #2563EB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Voir l'appel</a></p>{{end}}
				</body>
			</html>
			`)),
		},
	}
}

func (s *EmailService) renderTemplate(templateName string, data any) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendCallSummary tells the agency what a caller said and what the assistant answered
func (s *EmailService) SendCallSummary(ctx context.Context, to string, summary CallSummary) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: callSummaryTemplate},
		observability.Field{Key: "recipient", Value: to},
	)

	if to == "" {
		return ErrInvalidEmailAddress
	}

	from := summary.From
	if from == "" {
		from = "numéro masqué"
	}
	subject := fmt.Sprintf("Nouvel appel de %s", from)

	htmlContent, err := s.renderTemplate(callSummaryTemplate, summary)
	if err != nil {
		s.logger.Error(ctx, "failed to render call summary email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send call summary email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
