package payment

import "strings"

// countryCodePrefix is stripped before any prefix check.
const countryCodePrefix = "+225"

// operator-specific leading digit pairs
var (
	moovPrefixes   = []string{"01", "02", "05"}
	airtelPrefixes = []string{"07", "09"}
)

// ValidatePhoneNumber reports whether phone is structurally acceptable for
// the given payment method. Unknown methods fall back to the length check
// only; that permissive default is deliberate, not an oversight.
func ValidatePhoneNumber(phone string, method Method) bool {
	clean := normalizePhone(phone)
	if len(clean) < 8 {
		return false
	}

	switch method {
	case MethodMoov:
		return hasAnyPrefix(clean, moovPrefixes)
	case MethodAirtel:
		return hasAnyPrefix(clean, airtelPrefixes)
	default:
		return true
	}
}

// normalizePhone removes spaces, hyphens and the country-code prefix.
func normalizePhone(phone string) string {
	clean := strings.ReplaceAll(phone, " ", "")
	clean = strings.ReplaceAll(clean, "-", "")
	return strings.ReplaceAll(clean, countryCodePrefix, "")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
