package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

// local@domain.tld shape, no whitespace. Deliberately loose beyond that.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Transcript rejects blank or over-length transcript text. The length check
// runs on the raw input, not the trimmed one, matching the upload cap.
func Transcript(transcript string, maxChars int) error {
	if strings.TrimSpace(transcript) == "" {
		return domain.ClientError(domain.KindMissingInput, "Transcript is required")
	}
	if len(transcript) > maxChars {
		return domain.ClientError(domain.KindInputTooLarge,
			fmt.Sprintf("Transcript is too long. Maximum %d characters.", maxChars))
	}
	return nil
}

// Share checks the summary and every recipient before any SMTP work happens.
// The first invalid address aborts the whole request.
func Share(summary string, recipients []string) error {
	if strings.TrimSpace(summary) == "" {
		return domain.ClientError(domain.KindMissingInput, "Summary is required")
	}
	if len(recipients) == 0 {
		return domain.ClientError(domain.KindMissingRecipients, "At least one recipient email is required")
	}
	for _, email := range recipients {
		if !emailPattern.MatchString(strings.TrimSpace(email)) {
			return domain.ClientError(domain.KindInvalidRecipient,
				fmt.Sprintf("Invalid email format: %s", email))
		}
	}
	return nil
}

// Export checks the summary for the PDF export endpoint.
func Export(summary string, maxChars int) error {
	if strings.TrimSpace(summary) == "" {
		return domain.ClientError(domain.KindMissingInput, "Summary is required")
	}
	if len(summary) > maxChars {
		return domain.ClientError(domain.KindInputTooLarge,
			fmt.Sprintf("Summary is too long. Maximum %d characters.", maxChars))
	}
	return nil
}
