// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/board). This root package
// holds sentinel errors, validation types, and shared validation messages.
package domain
