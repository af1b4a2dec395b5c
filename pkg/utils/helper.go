package utils

import (
	"crypto/rand"
	"fmt"
	"strconv"
)

// ParseInt parses query parameter values, falling back to a default.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

// GenerateConfirmationCode returns a random numeric code of the given
// length, the kind that gets emailed during signup.
func GenerateConfirmationCode(length int) string {
	if length <= 0 {
		length = 6
	}

	const digits = "0123456789"
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}

	return string(buf)
}

// CalculateTotalPages for pagination metadata.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// BuildPageURL renders the link used in the pagination envelope's
// next/previous fields.
func BuildPageURL(path string, page, pageSize int) string {
	return fmt.Sprintf("%s?page=%d&page_size=%d", path, page, pageSize)
}
