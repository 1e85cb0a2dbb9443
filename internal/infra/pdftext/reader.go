// Package pdftext adapts github.com/ledongthuc/pdf to page-wise text extraction.
package pdftext

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
)

// Reader opens PDF documents held in memory.
type Reader struct{}

// NewReader constructs a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Open parses content. Malformed input that makes the parser panic is
// reported as an error.
func (r *Reader) Open(content []byte) (doc acquisition.PDFDocument, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &document{reader: reader, pages: reader.NumPage()}, nil
}

type document struct {
	reader *pdf.Reader
	pages  int
}

func (d *document) NumPage() int {
	return d.pages
}

func (d *document) PageText(n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("read page: %v", rec)
		}
	}()

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}
