package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

// ExtractService turns an uploaded artifact into transcript text. Plain text
// passes through verbatim; PDFs go through text extraction.
type ExtractService struct {
	maxChars int
}

func NewExtractService(cfg config.Config) *ExtractService {
	return &ExtractService{maxChars: cfg.MaxTranscriptChars}
}

// ExtractText converts the uploaded bytes into plain text. contentType is the
// declared MIME type from the multipart part; the filename extension is the
// fallback when the browser sends a generic type.
func (s *ExtractService) ExtractText(data []byte, contentType, filename string) (string, error) {
	var transcript string

	switch {
	case isPlainText(contentType, filename):
		transcript = string(data)
	case isPDF(contentType, filename):
		text, err := extractPDFText(data)
		if err != nil {
			return "", domain.ClientError(domain.KindExtractionFailed,
				"Failed to parse PDF file. Please ensure it is a valid PDF document.")
		}
		if strings.TrimSpace(text) == "" {
			// Extraction succeeded but produced nothing readable:
			// encrypted, scanned-image-only, or empty document.
			return "", domain.ClientError(domain.KindEmptyExtractedText,
				"Could not extract text from the PDF. The file may be encrypted, scanned, or contain only images.")
		}
		transcript = text
	default:
		return "", domain.ClientError(domain.KindUnsupportedFile,
			"Unsupported file type. Please upload a .txt or .pdf file.")
	}

	if strings.TrimSpace(transcript) == "" {
		return "", domain.ClientError(domain.KindEmptyExtractedText,
			"The uploaded file appears to be empty or contains no readable text.")
	}
	if len(transcript) > s.maxChars {
		return "", domain.ClientError(domain.KindInputTooLarge,
			fmt.Sprintf("File content is too long. Maximum %d characters allowed.", s.maxChars))
	}

	return transcript, nil
}

func isPlainText(contentType, filename string) bool {
	if strings.HasPrefix(strings.ToLower(contentType), "text/plain") {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".txt")
}

func isPDF(contentType, filename string) bool {
	if strings.HasPrefix(strings.ToLower(contentType), "application/pdf") {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// extractPDFText reads every page's text content. The pdf library panics on
// some malformed documents, so the recover turns that into an error.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}

	return buf.String(), nil
}
