// Package web provides the gin HTTP handlers for the advising API:
// chat, transcript upload, and catalog status.
package web

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/advisor"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/logger"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/metrics"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/sentry"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/transcript"
)

// Handler bundles the API endpoints and their dependencies.
type Handler struct {
	advisor        *advisor.Advisor
	store          *catalog.Store
	log            *logger.Logger
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

// NewHandler creates the API handler set.
func NewHandler(adv *advisor.Advisor, store *catalog.Store, log *logger.Logger, m *metrics.Metrics, maxUploadBytes int64) *Handler {
	return &Handler{
		advisor:        adv,
		store:          store,
		log:            log.WithModule("web"),
		metrics:        m,
		maxUploadBytes: maxUploadBytes,
	}
}

// Status reports catalog counts and program names for the frontend
// header.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"program_count": h.store.ProgramCount(),
		"course_count":  h.store.CourseCount(),
		"program_names": h.store.ProgramNames(),
	})
}

// Chat handles one conversation turn.
func (h *Handler) Chat(c *gin.Context) {
	start := time.Now()

	var req advisor.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.chatError(c, http.StatusBadRequest, "Missing 'message' field")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.chatError(c, http.StatusBadRequest, "Empty message")
		return
	}

	resp, err := h.advisor.Chat(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyMessage) {
			h.chatError(c, http.StatusBadRequest, "Empty message")
			return
		}
		h.log.WithError(err).Errorf("chat request failed")
		sentry.CaptureExceptionWithContext(c.Request.Context(), err)
		h.chatError(c, http.StatusInternalServerError, apperrors.GetUserMessage(err))
		return
	}

	if h.metrics != nil {
		h.metrics.ChatRequestsTotal.WithLabelValues("success").Inc()
		h.metrics.ChatDurationSeconds.Observe(time.Since(start).Seconds())
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) chatError(c *gin.Context, status int, message string) {
	if h.metrics != nil {
		h.metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		h.metrics.HTTPErrorsTotal.WithLabelValues("/chat", strconv.Itoa(status)).Inc()
	}
	c.JSON(status, gin.H{"error": message})
}

// UploadTranscript receives a transcript file, parses course codes with
// status, and returns them. The parsed codes live in the browser; the
// server keeps no per-student state.
func (h *Handler) UploadTranscript(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.uploadError(c, "none", http.StatusBadRequest, "No file uploaded")
		return
	}
	if file.Filename == "" {
		h.uploadError(c, "none", http.StatusBadRequest, "No file selected")
		return
	}

	name := strings.ToLower(file.Filename)
	format := strings.TrimPrefix(filepath.Ext(name), ".")
	switch format {
	case "txt", "csv", "pdf":
	default:
		h.uploadError(c, "other", http.StatusBadRequest, "Only .txt, .csv, and .pdf files are supported")
		return
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		h.uploadError(c, format, http.StatusBadRequest, "File too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.uploadError(c, format, http.StatusBadRequest, "Could not read file")
		return
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		h.uploadError(c, format, http.StatusBadRequest, "Could not read file")
		return
	}

	var content string
	if format == "pdf" {
		content, err = transcript.ExtractPDFText(data)
		if err != nil {
			h.log.WithError(err).Warnf("pdf extraction failed")
			h.uploadError(c, format, http.StatusBadRequest, apperrors.GetUserMessage(err))
			return
		}
	} else {
		if !utf8.Valid(data) {
			h.uploadError(c, format, http.StatusBadRequest, "Could not read file - ensure it is a text file")
			return
		}
		content = string(data)
	}

	result := transcript.Parse(content)
	if result.Empty() {
		h.log.WithError(apperrors.ErrNoCoursesFound).WithField("format", format).
			Warnf("transcript upload rejected")
		h.uploadError(c, format, http.StatusBadRequest, "No course codes found. Expected format: DEPT NNNNN (e.g., CMSC 14100)")
		return
	}

	if h.metrics != nil {
		h.metrics.TranscriptUploadsTotal.WithLabelValues(format, "success").Inc()
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) uploadError(c *gin.Context, format string, status int, message string) {
	if h.metrics != nil {
		h.metrics.TranscriptUploadsTotal.WithLabelValues(format, "error").Inc()
		h.metrics.HTTPErrorsTotal.WithLabelValues("/upload-transcript", strconv.Itoa(status)).Inc()
	}
	c.JSON(status, gin.H{"error": message})
}
