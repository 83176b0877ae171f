package verification

import (
    "fmt"
    "regexp"
    "strings"
)

var nonDigit = regexp.MustCompile(`\D`)
var nonDigitKeepPlus = regexp.MustCompile(`[^\d+]`)

// FormatPhoneToE164 normalizes a phone number for SMS delivery. Numbers
// without a + prefix get the default country code, after dropping a leading
// US 1 (for +1 defaults) or a leading trunk 0.
func FormatPhoneToE164(phone, defaultCountryCode string) string {
    cleaned := nonDigitKeepPlus.ReplaceAllString(phone, "")
    if strings.HasPrefix(cleaned, "+") {
        return cleaned
    }
    if defaultCountryCode == "+1" && len(cleaned) == 11 && strings.HasPrefix(cleaned, "1") {
        cleaned = cleaned[1:]
    }
    cleaned = strings.TrimPrefix(cleaned, "0")
    return defaultCountryCode + cleaned
}

// FormatPhoneForDisplay pretty-prints US numbers; anything else is returned
// unchanged.
func FormatPhoneForDisplay(phone string) string {
    cleaned := nonDigit.ReplaceAllString(phone, "")
    if len(cleaned) == 10 {
        return fmt.Sprintf("(%s) %s-%s", cleaned[:3], cleaned[3:6], cleaned[6:])
    }
    if len(cleaned) == 11 && strings.HasPrefix(cleaned, "1") {
        return fmt.Sprintf("+1 (%s) %s-%s", cleaned[1:4], cleaned[4:7], cleaned[7:])
    }
    return phone
}

// IsValidPhoneNumber accepts 7-15 digits, covering US numbers with or
// without country code and international lengths.
func IsValidPhoneNumber(phone string) bool {
    cleaned := nonDigit.ReplaceAllString(phone, "")
    return len(cleaned) >= 7 && len(cleaned) <= 15
}
