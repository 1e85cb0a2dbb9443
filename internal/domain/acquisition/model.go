package acquisition

import "github.com/yanqian/ai-summarizer/internal/domain/textstats"

// Source identifies where a Document's text came from.
type Source string

const (
	SourceManual Source = "manual"
	SourceText   Source = "txt"
	SourcePDF    Source = "pdf"
)

// Upload is a document submitted by the user.
type Upload struct {
	Filename string
	MimeType string
	Content  []byte
}

// Input is everything a submission may carry: the text area and an optional file.
type Input struct {
	Text   string
	Upload *Upload
}

// Document is the acquired source text.
type Document struct {
	Text     string          `json:"text"`
	Source   Source          `json:"source"`
	Filename string          `json:"filename,omitempty"`
	Pages    int             `json:"pages,omitempty"`
	Stats    textstats.Stats `json:"stats"`
}

// PDFDocument gives page-wise access to an opened PDF. Pages are 1-indexed.
type PDFDocument interface {
	NumPage() int
	PageText(page int) (string, error)
}

// PDFReader opens raw PDF bytes.
type PDFReader interface {
	Open(content []byte) (PDFDocument, error)
}

// Recorder receives extraction outcomes for metrics.
type Recorder interface {
	ObserveExtraction(source string, ok bool)
}
