package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/validate"
)

const apiVersion = "1.0.0"

// Narrow views of the services, so tests can swap in fakes.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, customPrompt string) (string, error)
}

type Extractor interface {
	ExtractText(data []byte, contentType, filename string) (string, error)
}

type Mailer interface {
	Send(summary string, recipients []string, subject string) error
}

type Renderer interface {
	RenderSummary(title, summary string) ([]byte, error)
}

type API struct {
	cfg        config.Config
	summarizer Summarizer
	extractor  Extractor
	mailer     Mailer
	renderer   Renderer
}

func NewAPI(cfg config.Config, summarizer Summarizer, extractor Extractor, mailer Mailer, renderer Renderer) *API {
	return &API{cfg: cfg, summarizer: summarizer, extractor: extractor, mailer: mailer, renderer: renderer}
}

func registerRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)
		apiGroup.POST("/summarize", api.handleSummarize)
		apiGroup.POST("/upload", api.handleUpload)
		apiGroup.POST("/share", api.handleShare)
		apiGroup.POST("/export", api.handleExport)
	}

	r.GET("/health", api.handleHealth)
	r.GET("/", api.handleRoot)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": a.cfg.Env,
		"version":     apiVersion,
	})
}

func (a *API) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "AI Meeting Summarizer API",
		"description": "Backend API for the AI Meeting Summarizer application",
		"endpoints": []gin.H{
			{"path": "/api/summarize", "method": "POST", "description": "Generate AI summary from transcript"},
			{"path": "/api/upload", "method": "POST", "description": "Upload transcript file (txt/pdf)"},
			{"path": "/api/share", "method": "POST", "description": "Share summary via email"},
			{"path": "/api/export", "method": "POST", "description": "Download summary as PDF"},
			{"path": "/health", "method": "GET", "description": "Health check endpoint"},
		},
		"version": apiVersion,
		"status":  "online",
	})
}

func (a *API) handleSummarize(c *gin.Context) {
	var payload domain.SummarizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Transcript(payload.Transcript, a.cfg.MaxTranscriptChars); err != nil {
		a.respondError(c, err)
		return
	}

	summary, err := a.summarizer.Summarize(c.Request.Context(), payload.Transcript, payload.CustomPrompt)
	if err != nil {
		log.Printf("summarization failed: %v", err)
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (a *API) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	if fileHeader.Size > a.cfg.MaxUploadBytes {
		a.respondError(c, a.fileTooLarge())
		return
	}

	upload, err := fileHeader.Open()
	if err != nil {
		log.Printf("error opening upload: %v", err)
		respondMessage(c, http.StatusInternalServerError, "Failed to process file")
		return
	}
	defer upload.Close()

	data, err := io.ReadAll(upload)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			a.respondError(c, a.fileTooLarge())
			return
		}
		log.Printf("error reading upload: %v", err)
		respondMessage(c, http.StatusInternalServerError, "Failed to process file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	transcript, err := a.extractor.ExtractText(data, contentType, fileHeader.Filename)
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

func (a *API) handleShare(c *gin.Context) {
	var payload domain.ShareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Share(payload.Summary, payload.Recipients); err != nil {
		a.respondError(c, err)
		return
	}

	if err := a.mailer.Send(payload.Summary, payload.Recipients, payload.Subject); err != nil {
		log.Printf("email sending failed: %v", err)
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary shared successfully"})
}

func (a *API) handleExport(c *gin.Context) {
	var payload domain.ExportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Export(payload.Summary, a.cfg.MaxTranscriptChars); err != nil {
		a.respondError(c, err)
		return
	}

	data, err := a.renderer.RenderSummary(payload.Title, payload.Summary)
	if err != nil {
		log.Printf("pdf export failed: %v", err)
		a.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="meeting-summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (a *API) fileTooLarge() error {
	maxMB := a.cfg.MaxUploadBytes / (1024 * 1024)
	return domain.ClientError(domain.KindFileTooLarge,
		fmt.Sprintf("File too large. Maximum size is %dMB.", maxMB))
}

// respondError maps an error to its HTTP response. Taxonomy errors carry
// their own status and client-safe message; the underlying cause is echoed
// only outside production.
func (a *API) respondError(c *gin.Context, err error) {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if appErr.Err != nil && !a.cfg.IsProduction() {
			body["details"] = appErr.Err.Error()
		}
		c.JSON(appErr.Status, body)
		return
	}

	body := gin.H{"error": "Internal server error"}
	if !a.cfg.IsProduction() {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
