package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

func kindOf(t *testing.T, err error) domain.ErrorKind {
	t.Helper()

	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *domain.Error, got %T (%v)", err, err)
	}
	return appErr.Kind
}

func TestTranscript(t *testing.T) {
	if err := Transcript("Alice: let's ship Friday.", 50000); err != nil {
		t.Fatalf("valid transcript rejected: %v", err)
	}

	if kind := kindOf(t, Transcript("", 50000)); kind != domain.KindMissingInput {
		t.Fatalf("empty transcript: expected MISSING_INPUT, got %s", kind)
	}

	if kind := kindOf(t, Transcript("   \n\t ", 50000)); kind != domain.KindMissingInput {
		t.Fatalf("whitespace transcript: expected MISSING_INPUT, got %s", kind)
	}

	long := strings.Repeat("a", 50001)
	if kind := kindOf(t, Transcript(long, 50000)); kind != domain.KindInputTooLarge {
		t.Fatalf("long transcript: expected INPUT_TOO_LARGE, got %s", kind)
	}

	// Exactly at the cap is allowed.
	if err := Transcript(strings.Repeat("a", 50000), 50000); err != nil {
		t.Fatalf("transcript at cap rejected: %v", err)
	}
}

func TestShare(t *testing.T) {
	if err := Share("the summary", []string{"a@x.com", "b@y.org"}); err != nil {
		t.Fatalf("valid share rejected: %v", err)
	}

	if kind := kindOf(t, Share("  ", []string{"a@x.com"})); kind != domain.KindMissingInput {
		t.Fatalf("blank summary: expected MISSING_INPUT, got %s", kind)
	}

	if kind := kindOf(t, Share("summary", nil)); kind != domain.KindMissingRecipients {
		t.Fatalf("nil recipients: expected MISSING_RECIPIENTS, got %s", kind)
	}

	if kind := kindOf(t, Share("summary", []string{})); kind != domain.KindMissingRecipients {
		t.Fatalf("empty recipients: expected MISSING_RECIPIENTS, got %s", kind)
	}

	err := Share("summary", []string{"a@x.com", "not-an-email"})
	if kind := kindOf(t, err); kind != domain.KindInvalidRecipient {
		t.Fatalf("bad recipient: expected INVALID_RECIPIENT, got %s", kind)
	}
	if !strings.Contains(err.Error(), "not-an-email") {
		t.Fatalf("error should name the offending address, got %q", err.Error())
	}
}

func TestShareRecipientPatterns(t *testing.T) {
	invalid := []string{
		"plain",
		"@no-local.com",
		"no-domain@",
		"no-tld@host",
		"two words@x.com",
		"a@x .com",
	}
	for _, email := range invalid {
		if err := Share("summary", []string{email}); err == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}

	valid := []string{
		"a@x.com",
		"first.last@sub.domain.co.uk",
		"user+tag@example.org",
	}
	for _, email := range valid {
		if err := Share("summary", []string{email}); err != nil {
			t.Errorf("expected %q to be accepted, got %v", email, err)
		}
	}
}

func TestExport(t *testing.T) {
	if err := Export("summary", 50000); err != nil {
		t.Fatalf("valid export rejected: %v", err)
	}
	if kind := kindOf(t, Export("", 50000)); kind != domain.KindMissingInput {
		t.Fatalf("blank export summary: expected MISSING_INPUT, got %s", kind)
	}
	if kind := kindOf(t, Export(strings.Repeat("x", 11), 10)); kind != domain.KindInputTooLarge {
		t.Fatalf("long export summary: expected INPUT_TOO_LARGE, got %s", kind)
	}
}
