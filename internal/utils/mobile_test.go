package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMobileNumber_Valid(t *testing.T) {
	cases := []string{
		"8050518293",
		"1234567",         // minimum length
		"123456789012345", // maximum length
		" 8050518293 ",    // surrounding whitespace is trimmed
	}

	for _, input := range cases {
		got, err := ValidateMobileNumber(input)
		assert.NoError(t, err, "input %q", input)
		assert.NotEmpty(t, got)
	}
}

func TestValidateMobileNumber_Invalid(t *testing.T) {
	cases := []string{
		"",
		"123456",           // too short
		"1234567890123456", // too long
		"+628050518293",    // plus sign not allowed
		"80505abc93",
		"805 0518293",
	}

	for _, input := range cases {
		got, err := ValidateMobileNumber(input)
		assert.Error(t, err, "input %q", input)
		assert.Empty(t, got)
	}
}
