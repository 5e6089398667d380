package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Headers.
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// Telegram Bot API puts the token into the request path.
	regexp.MustCompile(`(/bot)[0-9]+:[A-Za-z0-9_-]+(/)`),
	// JSON fields.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("contactEmail":\s?").+?(")`),
	regexp.MustCompile(`(?s)("email":\s?").+?(")`),
	regexp.MustCompile(`(?s)("address":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
