package mailing

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
	"testing"
)

func TestSendWelcome_BuildsMessage(t *testing.T) {
	var sent *gomail.Message
	m := &smtpMailer{
		config: MailConfig{AppURL: "https://recipes.test", SMTPEmail: "noreply@recipes.test", SMTPSender: "RecipeHub"},
		dial: func(msg *gomail.Message, _ MailConfig) error {
			sent = msg
			return nil
		},
	}

	require.NoError(t, m.SendWelcome("a@b.com", "Ann"))
	require.NotNil(t, sent)

	assert.Equal(t, []string{"a@b.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to RecipeHub"}, sent.GetHeader("Subject"))
	assert.Equal(t, []string{`"RecipeHub" <noreply@recipes.test>`}, sent.GetHeader("From"))
}

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("Ann", "https://recipes.test")

	assert.Contains(t, body, "Hi Ann")
	assert.Contains(t, body, `href="https://recipes.test"`)
}

func TestSendMail_PropagatesDialError(t *testing.T) {
	m := &smtpMailer{dial: func(*gomail.Message, MailConfig) error { return errors.New("smtp down") }}

	assert.EqualError(t, m.SendMail("a@b.com", "s", "b"), "smtp down")
}

func TestDialAndSend_InvalidPort(t *testing.T) {
	err := dialAndSend(gomail.NewMessage(), MailConfig{SMTPPort: "abc"})
	assert.ErrorContains(t, err, "invalid SMTP port")
}
