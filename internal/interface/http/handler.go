package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
)

const (
	summaryFilename        = "summary.txt"
	summaryTruncatedHeader = "X-Summary-Truncated"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	summarizerSvc  summarizer.Service
	acquisitionSvc *acquisition.Service
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(summarySvc summarizer.Service, acquisitionSvc *acquisition.Service, logger *slog.Logger) *Handler {
	return &Handler{
		summarizerSvc:  summarySvc,
		acquisitionSvc: acquisitionSvc,
		logger:         logger.With("component", "http.handler"),
	}
}

type estimateRequest struct {
	Text string `json:"text"`
}

// Summarize accepts either a JSON body or a multipart form with an optional file.
func (h *Handler) Summarize(c *gin.Context) {
	var (
		req    summarizer.Request
		upload *acquisition.Upload
	)
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
		up, err := readUpload(c, false, h.acquisitionSvc.MaxFileBytes())
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
		upload = up
	} else if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	ctx := c.Request.Context()
	doc, err := h.acquisitionSvc.Resolve(ctx, acquisition.Input{Text: req.Text, Upload: upload})
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	req.Text = doc.Text
	req.RequestID = c.GetString(requestIDKey)

	resp, err := h.summarizerSvc.Summarize(ctx, req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}

	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition", `attachment; filename="`+summaryFilename+`"`)
		c.Header(summaryTruncatedHeader, strconv.FormatBool(resp.Truncated))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(resp.Summary))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Extract returns the text of an uploaded document so a form can pre-fill it.
func (h *Handler) Extract(c *gin.Context) {
	upload, err := readUpload(c, true, h.acquisitionSvc.MaxFileBytes())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	doc, err := h.acquisitionSvc.Extract(c.Request.Context(), *upload)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Estimate reports word, character and token counts for the given text.
func (h *Handler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.summarizerSvc.Estimate(req.Text))
}

// Options lists the selectable values and their defaults.
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.summarizerSvc.Options())
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// readUpload loads the "file" form field. A missing file is only an error when required.
func readUpload(c *gin.Context, required bool, limit int64) (*acquisition.Upload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		if !required && errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	content, err := readFormFile(header, limit)
	if err != nil {
		return nil, err
	}
	return &acquisition.Upload{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	}, nil
}

// readFormFile reads at most limit+1 bytes so the size check can still reject
// the upload without buffering all of it. A limit <= 0 reads everything.
func readFormFile(header *multipart.FileHeader, limit int64) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if limit <= 0 {
		return io.ReadAll(file)
	}
	return io.ReadAll(io.LimitReader(file, limit+1))
}
