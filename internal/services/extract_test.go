package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

func extractService(maxChars int) *ExtractService {
	return NewExtractService(config.Config{MaxTranscriptChars: maxChars})
}

func extractKind(t *testing.T, err error) domain.ErrorKind {
	t.Helper()

	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *domain.Error, got %T (%v)", err, err)
	}
	return appErr.Kind
}

func TestExtractTxtPassthrough(t *testing.T) {
	svc := extractService(50000)

	content := "Alice: let's ship Friday."
	out, err := svc.ExtractText([]byte(content), "text/plain", "meeting.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != content {
		t.Fatalf("expected verbatim passthrough, got %q", out)
	}
}

func TestExtractTxtExtensionFallback(t *testing.T) {
	// Browsers sometimes send a generic content type; the extension decides.
	svc := extractService(50000)

	out, err := svc.ExtractText([]byte("notes"), "application/octet-stream", "meeting.TXT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "notes" {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	svc := extractService(50000)

	_, err := svc.ExtractText([]byte("data"), "image/png", "scan.png")
	if kind := extractKind(t, err); kind != domain.KindUnsupportedFile {
		t.Fatalf("expected UNSUPPORTED_FILE_TYPE, got %s", kind)
	}
}

func TestExtractEmptyTxt(t *testing.T) {
	svc := extractService(50000)

	_, err := svc.ExtractText([]byte("  \n\t"), "text/plain", "empty.txt")
	if kind := extractKind(t, err); kind != domain.KindEmptyExtractedText {
		t.Fatalf("expected EMPTY_EXTRACTED_TEXT, got %s", kind)
	}
}

func TestExtractTooLong(t *testing.T) {
	svc := extractService(10)

	_, err := svc.ExtractText([]byte(strings.Repeat("a", 11)), "text/plain", "long.txt")
	if kind := extractKind(t, err); kind != domain.KindInputTooLarge {
		t.Fatalf("expected INPUT_TOO_LARGE, got %s", kind)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	svc := extractService(50000)

	_, err := svc.ExtractText([]byte("definitely not a pdf"), "application/pdf", "broken.pdf")
	if kind := extractKind(t, err); kind != domain.KindExtractionFailed {
		t.Fatalf("expected EXTRACTION_FAILED, got %s", kind)
	}
}

func TestExtractPDFRoundTrip(t *testing.T) {
	// Build a real PDF and make sure its text comes back out.
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 10, "budgetmeeting")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("build test pdf: %v", err)
	}

	svc := extractService(50000)
	out, err := svc.ExtractText(buf.Bytes(), "application/pdf", "meeting.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "budgetmeeting") {
		t.Fatalf("expected extracted text to contain the page content, got %q", out)
	}
}
