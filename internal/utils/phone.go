package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{9,14}$`)

// IsValidPhoneNumber checks for an optional leading plus followed by 9 to 14 digits
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// StripPhoneSeparators removes the plus sign, spaces and dashes the SMS provider rejects
func StripPhoneSeparators(phone string) string {
	return strings.NewReplacer("+", "", " ", "", "-", "").Replace(phone)
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
