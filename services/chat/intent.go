package chat

import (
	"regexp"
	"strings"
)

// bookingIntentPatterns are the lexical hints that a message is asking to
// schedule an appointment. Best-effort heuristic: false positives and
// negatives are acceptable, determinism is not optional.
var bookingIntentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`book`),
	regexp.MustCompile(`appointment`),
	regexp.MustCompile(`schedule`),
	regexp.MustCompile(`reserve`),
	regexp.MustCompile(`visit`),
	regexp.MustCompile(`bring.*in`),
	regexp.MustCompile(`come in`),
	regexp.MustCompile(`make.*appointment`),
	regexp.MustCompile(`set up.*appointment`),
	regexp.MustCompile(`when can`),
	regexp.MustCompile(`available`),
	regexp.MustCompile(`slot`),
	regexp.MustCompile(`consultation`),
}

// DetectBookingIntent reports whether the message looks like a request to
// book an appointment. Case-insensitive, stateless, never fails.
func DetectBookingIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range bookingIntentPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
