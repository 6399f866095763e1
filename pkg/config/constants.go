/* pkg/config/constants.go */

// Package config centralizes generation defaults, the strength palette and
// user-adjustable settings.
package config

// Password generation defaults.
const (
	DefaultPasswordLength = 14
	PasswordCharset       = "@$!%*?&#"
	PasswordHistoryLimit  = 10
)

// Strength level colors.
const (
	ColorWeak   = "#dc2626" // red
	ColorMedium = "#f59e0b" // amber
	ColorStrong = "#16a34a" // green
)

// Spartan palette used for terminal accents.
const (
	SpartanAccent = "#D4AF37" // gold
	SpartanText   = "#EBE5E5" // light gray
	SpartanMuted  = "#9CA3AF"
)
