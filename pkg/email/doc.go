// Package email delivers transactional mail for account flows: password
// reset links, magic sign-in links, and welcome messages.
//
// The package exposes a single EmailSender interface with two
// implementations:
//
//   - Postmark-backed sender for production (github.com/mrz1836/postmark)
//   - DevSender, which writes each email to disk for local development
//
// # Usage
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Reset your password",
//	    BodyHTML: body,
//	    Tag:      "password-reset",
//	})
//
// # Error Handling
//
// All errors wrap sentinel values and can be checked with errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameters validation failed
//   - ErrFailedToSendEmail: delivery failed
//
// # Templates
//
// The templates subpackage renders the account emails (reset link, magic
// link, welcome) as templ components with inline CSS suitable for email
// clients.
package email
