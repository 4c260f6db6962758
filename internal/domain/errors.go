package domain

import (
	"fmt"
	"net/http"
)

// ErrorKind identifies one failure class of the API. Kinds decide the HTTP
// status; the Message on the Error is what clients see.
type ErrorKind string

const (
	KindMissingInput       ErrorKind = "MISSING_INPUT"
	KindInputTooLarge      ErrorKind = "INPUT_TOO_LARGE"
	KindFileTooLarge       ErrorKind = "FILE_TOO_LARGE"
	KindMissingRecipients  ErrorKind = "MISSING_RECIPIENTS"
	KindInvalidRecipient   ErrorKind = "INVALID_RECIPIENT"
	KindUnsupportedFile    ErrorKind = "UNSUPPORTED_FILE_TYPE"
	KindExtractionFailed   ErrorKind = "EXTRACTION_FAILED"
	KindEmptyExtractedText ErrorKind = "EMPTY_EXTRACTED_TEXT"

	KindUpstreamAuth        ErrorKind = "UPSTREAM_AUTH"
	KindUpstreamRateLimited ErrorKind = "UPSTREAM_RATE_LIMITED"
	KindSummarizationFailed ErrorKind = "SUMMARIZATION_FAILED"

	KindEmailAuth       ErrorKind = "EMAIL_AUTH"
	KindEmailConnection ErrorKind = "EMAIL_CONNECTION"
	KindEmailSendFailed ErrorKind = "EMAIL_SEND_FAILED"

	KindInternal ErrorKind = "INTERNAL"
)

// Error carries a taxonomy kind, the HTTP status to respond with, a message
// safe to show any client, and the underlying cause. The cause is echoed to
// clients only outside production.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClientError builds a 400 validation failure.
func ClientError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Status: http.StatusBadRequest, Message: message}
}

// UpstreamError builds a 500 failure caused by an external service.
func UpstreamError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Status: http.StatusInternalServerError, Message: message, Err: cause}
}
