package acquisition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

func TestExtractPlainText(t *testing.T) {
	svc := newTestService(&stubPDFReader{})
	content := "Line one.\nLine two with ünïcode."

	doc, err := svc.Extract(context.Background(), Upload{Filename: "notes.txt", Content: []byte(content)})
	require.NoError(t, err)
	require.Equal(t, content, doc.Text)
	require.Equal(t, SourceText, doc.Source)
	require.Equal(t, "notes.txt", doc.Filename)
	require.Equal(t, 6, doc.Stats.Words)
}

func TestExtractPlainTextDropsInvalidBytes(t *testing.T) {
	svc := newTestService(&stubPDFReader{})

	doc, err := svc.Extract(context.Background(), Upload{Filename: "broken.TXT", Content: []byte("caf\xffé\xc3 ok")})
	require.NoError(t, err)
	require.Equal(t, "café ok", doc.Text)
}

func TestExtractPDFJoinsPages(t *testing.T) {
	reader := &stubPDFReader{doc: &stubPDFDocument{pages: []string{"Hello", "World"}}}
	recorder := &stubRecorder{}
	svc := NewService(Config{MaxFileBytes: 1 << 20}, reader, nil, recorder, newTestLogger())

	doc, err := svc.Extract(context.Background(), Upload{Filename: "two-pages.pdf", Content: []byte("%PDF-1.4")})
	require.NoError(t, err)
	require.Equal(t, "Hello\nWorld", doc.Text)
	require.Equal(t, SourcePDF, doc.Source)
	require.Equal(t, 2, doc.Pages)
	require.Equal(t, []string{"pdf:true"}, recorder.events)
}

func TestExtractPDFKeepsEmptyPages(t *testing.T) {
	reader := &stubPDFReader{doc: &stubPDFDocument{pages: []string{"Intro", "", "Outro"}}}
	svc := newTestService(reader)

	doc, err := svc.Extract(context.Background(), Upload{Filename: "doc.pdf", Content: []byte("%PDF")})
	require.NoError(t, err)
	require.Equal(t, "Intro\n\nOutro", doc.Text)
}

func TestExtractPDFPageFailure(t *testing.T) {
	reader := &stubPDFReader{doc: &stubPDFDocument{
		pages:   []string{"ok", "boom"},
		failAt:  2,
		failErr: errors.New("malformed content stream"),
	}}
	recorder := &stubRecorder{}
	svc := NewService(Config{}, reader, nil, recorder, newTestLogger())

	doc, err := svc.Extract(context.Background(), Upload{Filename: "doc.pdf", Content: []byte("%PDF")})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeExtractionFailed))
	require.Contains(t, err.Error(), "page 2: malformed content stream")
	require.Empty(t, doc.Text)
	require.Equal(t, []string{"pdf:false"}, recorder.events)
}

func TestExtractPDFOpenFailure(t *testing.T) {
	svc := newTestService(&stubPDFReader{err: errors.New("encrypted document")})

	_, err := svc.Extract(context.Background(), Upload{Filename: "locked.pdf", Content: []byte("%PDF")})
	require.True(t, apperrors.IsCode(err, apperrors.CodeExtractionFailed))
	require.Contains(t, err.Error(), "encrypted document")
}

func TestExtractValidation(t *testing.T) {
	svc := NewService(Config{MaxFileBytes: 4}, &stubPDFReader{}, nil, nil, newTestLogger())

	_, err := svc.Extract(context.Background(), Upload{Filename: "empty.txt"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Extract(context.Background(), Upload{Filename: "big.txt", Content: []byte("too large")})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	for _, name := range []string{"x.png", "notes.md", "data.csv"} {
		_, err = svc.Extract(context.Background(), Upload{Filename: name, MimeType: "text/plain", Content: []byte("abc")})
		require.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedType), name)
	}
}

func TestDetectSource(t *testing.T) {
	tests := []struct {
		name   string
		upload Upload
		want   Source
		ok     bool
	}{
		{name: "txt extension", upload: Upload{Filename: "a.txt"}, want: SourceText, ok: true},
		{name: "pdf extension upper case", upload: Upload{Filename: "A.PDF"}, want: SourcePDF, ok: true},
		{name: "pdf mime", upload: Upload{Filename: "blob", MimeType: "application/pdf"}, want: SourcePDF, ok: true},
		{name: "text mime with charset", upload: Upload{Filename: "blob", MimeType: "text/plain; charset=utf-8"}, want: SourceText, ok: true},
		{name: "sniffed pdf", upload: Upload{Filename: "blob", Content: []byte("%PDF-1.7\n")}, want: SourcePDF, ok: true},
		{name: "sniffed text", upload: Upload{Filename: "blob", Content: []byte("plain words")}, want: SourceText, ok: true},
		{name: "markdown extension ignores text mime", upload: Upload{Filename: "notes.md", MimeType: "text/plain", Content: []byte("# notes")}, ok: false},
		{name: "csv extension ignores sniffing", upload: Upload{Filename: "data.csv", Content: []byte("a,b\n1,2")}, ok: false},
		{name: "unsupported", upload: Upload{Filename: "a.docx", MimeType: "application/msword", Content: []byte{0xd0, 0xcf, 0x11, 0xe0}}, ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := detectSource(tt.upload)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePrefersManualText(t *testing.T) {
	reader := &stubPDFReader{doc: &stubPDFDocument{pages: []string{"from file"}}}
	svc := newTestService(reader)
	upload := &Upload{Filename: "doc.pdf", Content: []byte("%PDF")}

	doc, err := svc.Resolve(context.Background(), Input{Text: "edited by hand", Upload: upload})
	require.NoError(t, err)
	require.Equal(t, "edited by hand", doc.Text)
	require.Equal(t, SourceManual, doc.Source)
	require.Zero(t, reader.opens)

	doc, err = svc.Resolve(context.Background(), Input{Text: "   ", Upload: upload})
	require.NoError(t, err)
	require.Equal(t, "from file", doc.Text)
	require.Equal(t, SourcePDF, doc.Source)

	doc, err = svc.Resolve(context.Background(), Input{})
	require.NoError(t, err)
	require.Empty(t, doc.Text)
	require.Equal(t, SourceManual, doc.Source)
}

func TestExtractStopsOnCanceledContext(t *testing.T) {
	reader := &stubPDFReader{doc: &stubPDFDocument{pages: []string{"a", "b"}}}
	svc := newTestService(reader)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Extract(ctx, Upload{Filename: "doc.pdf", Content: []byte("%PDF")})
	require.ErrorIs(t, err, context.Canceled)
}

func newTestService(reader PDFReader) *Service {
	return NewService(Config{}, reader, nil, nil, newTestLogger())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubPDFReader struct {
	doc   *stubPDFDocument
	err   error
	opens int
}

func (r *stubPDFReader) Open(content []byte) (PDFDocument, error) {
	r.opens++
	if r.err != nil {
		return nil, r.err
	}
	if r.doc == nil {
		return &stubPDFDocument{}, nil
	}
	return r.doc, nil
}

type stubPDFDocument struct {
	pages   []string
	failAt  int
	failErr error
}

func (d *stubPDFDocument) NumPage() int { return len(d.pages) }

func (d *stubPDFDocument) PageText(page int) (string, error) {
	if page == d.failAt {
		return "", d.failErr
	}
	return d.pages[page-1], nil
}

type stubRecorder struct {
	events []string
}

func (r *stubRecorder) ObserveExtraction(source string, ok bool) {
	r.events = append(r.events, source+":"+strconv.FormatBool(ok))
}
