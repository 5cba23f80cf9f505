package sms

import "strings"

// localDigits is the number of subscriber digits expected after the country
// code once a number is normalized.
const localDigits = 9

// NormalizePhone converts a free-form contact string into the
// country-code-prefixed digit string the gateway expects (no leading '+').
// A leading 0 is treated as the national trunk prefix and replaced with the
// country code. Anything that does not end up as countryCode followed by
// exactly nine digits is rejected rather than coerced.
func NormalizePhone(raw, countryCode string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if digits == "" {
		return "", &InvalidPhoneNumberError{Raw: raw}
	}

	if strings.HasPrefix(digits, "0") {
		digits = countryCode + digits[1:]
	} else if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	if len(digits) != len(countryCode)+localDigits {
		return "", &InvalidPhoneNumberError{Raw: raw}
	}

	return digits, nil
}
