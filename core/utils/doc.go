// Package utils provides small helpers shared by the canonicalizers:
// ordered first-non-empty fallback selection and rune-safe truncation.
package utils
