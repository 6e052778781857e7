package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail accepts addresses suitable for account identifiers: parseable
// by net/mail, single @, non-empty local part, and a domain with at least
// one dot.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" || domain == "" {
				return false
			}

			// Require a dotted domain; bare hostnames are not routable
			// account identifiers.
			if !strings.Contains(domain, ".") {
				return false
			}
			if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
