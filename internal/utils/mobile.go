package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// mobileNumberPattern is the wire contract for mobile numbers: digits
// only, between 7 and 15 of them.
var mobileNumberPattern = regexp.MustCompile(`^\d{7,15}$`)

// ValidateMobileNumber checks a mobile number against the contract and
// returns the trimmed value. Rejection happens before any network call.
func ValidateMobileNumber(mobileNumber string) (string, error) {
	trimmed := strings.TrimSpace(mobileNumber)
	if trimmed == "" {
		return "", fmt.Errorf("mobile number is required")
	}
	if !mobileNumberPattern.MatchString(trimmed) {
		return "", fmt.Errorf("mobile number must be 7 to 15 digits")
	}
	return trimmed, nil
}
