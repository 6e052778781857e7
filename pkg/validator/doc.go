// Package validator provides composable validation rules for the identity
// subsystem: email format and password policy checks.
//
// Rules are plain values combined with Apply, which collects every failure
// into a ValidationErrors slice instead of stopping at the first one:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.StrongPassword("password", password, cfg),
//	    validator.NotCommonPassword("password", password),
//	)
//
// Password policy is configurable through PasswordStrengthConfig so callers
// can swap requirements without touching the services that enforce them.
// ValidationErrors can be extracted from a wrapped error chain with
// ExtractValidationErrors for field-level reporting.
package validator
