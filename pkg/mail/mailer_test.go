package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMailer(baseURL string) *mailgunMailer {
	return &mailgunMailer{
		apiKey:    "test-api-key",
		domain:    "test-domain",
		fromEmail: "noreply@test-domain",
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 2 * time.Second},
		log:       zap.NewNop(),
	}
}

func TestSendEmail_Success(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotForm = make(map[string]string)
		for key, values := range r.MultipartForm.Value {
			gotForm[key] = values[0]
		}

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, "test-api-key", pass)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newTestMailer(server.URL)

	ok := m.SendEmail(context.Background(), "subject", "user@example.com", "template", []Var{
		{Key: "key", Value: "value"},
	})

	assert.True(t, ok)
	assert.Equal(t, "/test-domain/messages", gotPath)
	assert.Equal(t, "noreply@test-domain", gotForm["from"])
	assert.Equal(t, "user@example.com", gotForm["to"])
	assert.Equal(t, "subject", gotForm["subject"])
	assert.Equal(t, "template", gotForm["template"])
	assert.Equal(t, "value", gotForm["v:key"])
}

func TestSendEmail_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	m := newTestMailer(server.URL)

	ok := m.SendEmail(context.Background(), "subject", "user@example.com", "template", nil)
	assert.False(t, ok)
}

func TestSendEmail_Unreachable(t *testing.T) {
	// Point at a closed server: transport error must degrade to false,
	// never an error or panic
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	m := newTestMailer(server.URL)

	ok := m.SendEmail(context.Background(), "subject", "user@example.com", "template", nil)
	assert.False(t, ok)
}

func TestSendVerificationEmail(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotForm = make(map[string]string)
		for key, values := range r.MultipartForm.Value {
			gotForm[key] = values[0]
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newTestMailer(server.URL)

	ok := m.SendVerificationEmail(context.Background(), "user@example.com", "the-code")

	assert.True(t, ok)
	assert.Equal(t, "Verify Your Email", gotForm["subject"])
	assert.Equal(t, "verify-email", gotForm["template"])
	// Recipient is the user's own address
	assert.Equal(t, "user@example.com", gotForm["to"])
	assert.Equal(t, "the-code", gotForm["v:code"])
	assert.Equal(t, "user@example.com", gotForm["v:username"])
}

func TestNewMailer_DefaultTimeout(t *testing.T) {
	m := NewMailer(utils.MailConfig{APIKey: "k", Domain: "d", FromEmail: "f"}, zap.NewNop())

	impl, ok := m.(*mailgunMailer)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, impl.client.Timeout)
	assert.Equal(t, defaultBaseURL, impl.baseURL)
}
