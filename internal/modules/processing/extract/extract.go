package extract

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// PlaceholderTitle is used whenever extraction yields no usable title.
	PlaceholderTitle = "제목 없음"

	// MaxContentLength caps extracted text before it reaches the analyzer
	// and storage. Counted in runes, matching the character-based cap of the
	// archive schema.
	MaxContentLength = 100000

	// minFragmentLength filters nav/boilerplate fragments out of scraped
	// body text.
	minFragmentLength = 30

	fetchTimeout = 10 * time.Second
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// ErrUnsupportedFormat marks uploads with an extension the extractor cannot
// decode. The API layer maps it to a structured error body, not an HTTP error.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DecodeError marks an upload whose bytes could not be decoded by the
// extractor for its format.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Filename + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Result is the common output of both extraction modes.
type Result struct {
	Title string
	Text  string
}

// Service extracts plain text from URLs and uploaded documents.
// The per-format extractors are fields so tests can install deterministic
// replacements.
type Service struct {
	client *http.Client
	logger *zap.Logger

	pdfPages       func(data []byte) ([]string, error)
	docxParagraphs func(data []byte) ([]string, error)
}

// NewService creates an extractor with the default HTTP client and decoders.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		client:         &http.Client{Timeout: fetchTimeout},
		logger:         logger,
		pdfPages:       pdfPageTexts,
		docxParagraphs: docxParagraphTexts,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
