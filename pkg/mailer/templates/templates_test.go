package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerifyCode(t *testing.T) {
	html, err := RenderHTML(VerifyCode, map[string]any{
		"Username":         "alice",
		"Code":             "482913",
		"ExpiresInMinutes": 10,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "482913")
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "expire in 10 minutes")
}

func TestRenderVerifyCodeWithoutUsername(t *testing.T) {
	html, err := RenderHTML(VerifyCode, map[string]any{
		"Code":             "100000",
		"ExpiresInMinutes": 10,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "100000")
	assert.Contains(t, html, "Welcome!")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := RenderHTML("no_such_template", nil)
	assert.Error(t, err)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Your account verification code", Subject(VerifyCode))
	assert.Equal(t, "Notification", Subject("anything_else"))
}
