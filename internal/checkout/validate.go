package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberRe = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ValidCardNumber reports whether the input is exactly 16 digits after
// stripping spaces and dashes.
func ValidCardNumber(number string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(number)
	return cardNumberRe.MatchString(cleaned)
}

// ValidExpiry reports whether the input matches MM/YY with a month in
// [1,12] that is not in the past relative to now.
func ValidExpiry(expiry string, now time.Time) bool {
	if !expiryRe.MatchString(expiry) {
		return false
	}
	parts := strings.SplitN(expiry, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 {
		return false
	}
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	return year > curYear || (year == curYear && month >= curMonth)
}

// ValidCVV reports whether the input is 3 or 4 digits.
func ValidCVV(cvv string) bool {
	return cvvRe.MatchString(cvv)
}
