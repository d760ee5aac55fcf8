package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.mailgun.net/v3"

// Var is a single template variable sent alongside a templated email
type Var struct {
	Key   string
	Value string
}

// Mailer sends templated transactional email. Delivery is best effort:
// implementations report success/failure as a bool and never return an
// error, so a failed send can never fail the enclosing business operation.
type Mailer interface {
	SendEmail(ctx context.Context, subject, to, template string, vars []Var) bool
	SendVerificationEmail(ctx context.Context, email, code string) bool
}

type mailgunMailer struct {
	apiKey    string
	domain    string
	fromEmail string
	baseURL   string
	client    *http.Client
	log       *zap.Logger
}

func NewMailer(config utils.MailConfig, log *zap.Logger) Mailer {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &mailgunMailer{
		apiKey:    config.APIKey,
		domain:    config.Domain,
		fromEmail: config.FromEmail,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: timeout},
		log:       log.With(zap.String("component", "mailer")),
	}
}

// SendEmail posts a multipart form to the Mailgun messages endpoint.
// Exactly one delivery attempt; any failure (payload build, network,
// non-2xx status) is swallowed and reported as false.
func (m *mailgunMailer) SendEmail(ctx context.Context, subject, to, template string, vars []Var) bool {
	// Build multipart form payload
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		"from":     m.fromEmail,
		"to":       to,
		"subject":  subject,
		"template": template,
	}
	for _, v := range vars {
		fields["v:"+v.Key] = v.Value
	}

	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			m.log.Error("Failed to build mail payload", zap.Error(err), zap.String("to", to))
			return false
		}
	}

	if err := form.Close(); err != nil {
		m.log.Error("Failed to finalize mail payload", zap.Error(err), zap.String("to", to))
		return false
	}

	// Single synchronous POST, bounded by the client timeout
	url := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		m.log.Error("Failed to build mail request", zap.Error(err), zap.String("to", to))
		return false
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("template", template),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.log.Error("Mail API rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", to),
			zap.String("template", template),
		)
		return false
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("template", template),
	)

	return true
}

// SendVerificationEmail sends the verify-email template to the affected
// user's own address
func (m *mailgunMailer) SendVerificationEmail(ctx context.Context, email, code string) bool {
	return m.SendEmail(ctx, "Verify Your Email", email, "verify-email", []Var{
		{Key: "code", Value: code},
		{Key: "username", Value: email},
	})
}
