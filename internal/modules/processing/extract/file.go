package extract

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// FromFile extracts text from an uploaded document, dispatching on the
// filename extension. Unknown extensions return ErrUnsupportedFormat; decode
// failures return a wrapped error carrying the underlying message. The title
// is the original filename.
func (s *Service) FromFile(filename string, data []byte) (Result, error) {
	var (
		parts []string
		err   error
	)

	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		parts, err = s.pdfPages(data)
	case ".docx":
		parts, err = s.docxParagraphs(data)
	default:
		return Result{}, ErrUnsupportedFormat
	}
	if err != nil {
		return Result{}, &DecodeError{Filename: filename, Err: err}
	}

	return Result{
		Title: filename,
		Text:  truncateRunes(strings.Join(parts, " "), MaxContentLength),
	}, nil
}

// pdfPageTexts returns the plain text of each page.
func pdfPageTexts(data []byte) (pages []string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, err
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	return pages, nil
}

// docxParagraphTexts returns the text of each paragraph.
func docxParagraphTexts(data []byte) ([]string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, strings.TrimSpace(p.String()))
		}
	}
	return paragraphs, nil
}
