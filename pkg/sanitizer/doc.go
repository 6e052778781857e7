// Package sanitizer normalizes untrusted input before validation and
// storage. Sanitization is lossy by design: it produces the canonical form
// of a value, while validation decides whether that form is acceptable.
package sanitizer
