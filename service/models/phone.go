package models

import "strings"

// NormalizePhoneNumber converts Kenyan mobile numbers written as 07XXXXXXXX,
// +2547XXXXXXXX or 2547XXXXXXXX into the canonical 254XXXXXXXXX form the
// gateway expects. Whitespace anywhere in the number is tolerated. The
// second return value is false when the input is not a valid number.
func NormalizePhoneNumber(phone string) (string, bool) {
	cleaned := strings.Join(strings.Fields(phone), "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	switch {
	case strings.HasPrefix(cleaned, "254") && len(cleaned) == 12:
		return cleaned, true
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		return "254" + cleaned[1:], true
	}
	return "", false
}
