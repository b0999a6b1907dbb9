package email

import (
	"html/template"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/config"
)

func TestNewClientDisabledWithoutAPIKey(t *testing.T) {
	nop := zerolog.Nop()
	client := NewClient(&config.Config{}, &nop)

	assert.Nil(t, client)
	assert.False(t, client.Enabled())
}

func TestNewClientEnabledWithAPIKey(t *testing.T) {
	nop := zerolog.Nop()
	cfg := &config.Config{
		Email: config.EmailConfig{
			APIKey: "re_test_key",
			To:     "inbox@example.com",
		},
	}

	client := NewClient(cfg, &nop)
	require.NotNil(t, client)
	assert.True(t, client.Enabled())
}

func TestContactTemplateRenders(t *testing.T) {
	tmpl, err := template.ParseFS(templateFS, "templates/contact.html")
	require.NoError(t, err)

	var body strings.Builder
	err = tmpl.Execute(&body, map[string]string{
		"FirstName": "Nicolas",
		"LastName":  "Implant",
		"ReplyTo":   "nicolas@implant.com",
		"Message":   "I would like to know more about this API.",
	})
	require.NoError(t, err)

	assert.Contains(t, body.String(), "Nicolas")
	assert.Contains(t, body.String(), "nicolas@implant.com")
}
