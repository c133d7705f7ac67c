package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names understood by the email worker.
const (
	VerifyCode = "verify_code"
)

var verifyCodeTmpl = template.Must(template.New(VerifyCode).Parse(`
<div style="font-family: sans-serif; text-align: center; padding: 20px;">
  <h2>Welcome{{if .Username}}, {{.Username}}{{end}}!</h2>
  <p>Thank you for registering. Please use the following code to verify your account:</p>
  <p style="font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px; padding: 10px; background-color: #f0f0f0; border-radius: 5px;">
    {{.Code}}
  </p>
  <p>This code will expire in {{.ExpiresInMinutes}} minutes.</p>
</div>
`))

// Subject returns the mail subject for a template name.
func Subject(name string) string {
	switch name {
	case VerifyCode:
		return "Your account verification code"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	switch name {
	case VerifyCode:
		var buf bytes.Buffer
		if err := verifyCodeTmpl.Execute(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unknown email template %q", name)
	}
}
