package templates

import (
	"fmt"
	"html"

	"github.com/a-h/templ"
)

const layout = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Helvetica,Arial,sans-serif;">
<table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
<tr><td align="center" style="padding:24px;">
<table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
<tr><td>
<h1 style="margin:0 0 16px;font-size:20px;color:#333333;">%s</h1>
%s
</td></tr>
</table>
<p style="font-size:12px;color:#9a9ea6;margin-top:16px;">If you did not request this email, you can safely ignore it.</p>
</td></tr>
</table>
</body>
</html>`

const buttonHTML = `<p style="margin:24px 0;"><a href="%s" style="background-color:#3869d4;color:#ffffff;padding:10px 18px;border-radius:4px;text-decoration:none;display:inline-block;">%s</a></p>`

const textHTML = `<p style="margin:0 0 12px;font-size:14px;line-height:1.5;color:#51545e;">%s</p>`

func letter(title string, body ...string) templ.Component {
	var content string
	for _, b := range body {
		content += b
	}
	return templ.Raw(fmt.Sprintf(layout, html.EscapeString(title), content))
}

func text(s string) string {
	return fmt.Sprintf(textHTML, html.EscapeString(s))
}

func button(link, label string) string {
	return fmt.Sprintf(buttonHTML, html.EscapeString(link), html.EscapeString(label))
}

// PasswordReset builds the email carrying a single-use password reset link.
// The window is displayed to the recipient so they know how long the link
// remains valid.
func PasswordReset(link string, windowMinutes int) templ.Component {
	return letter("Reset your password",
		text("We received a request to reset the password for your account."),
		button(link, "Reset password"),
		text(fmt.Sprintf("This link expires in %d minutes and can only be used once.", windowMinutes)),
	)
}

// MagicLink builds the email carrying a single-use sign-in link.
func MagicLink(link string, windowMinutes int) templ.Component {
	return letter("Sign in to your account",
		text("Click the button below to sign in. No password needed."),
		button(link, "Sign in"),
		text(fmt.Sprintf("This link expires in %d minutes and can only be used once.", windowMinutes)),
	)
}

// Welcome builds the greeting sent after successful registration.
func Welcome(name string) templ.Component {
	greeting := "Welcome aboard!"
	if name != "" {
		greeting = fmt.Sprintf("Welcome aboard, %s!", name)
	}
	return letter(greeting,
		text("Your account has been created and is ready to use."),
		text("If you have any questions, just reply to this email."),
	)
}
