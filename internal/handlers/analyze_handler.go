package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"meprofiled/backend/internal/models"
	"meprofiled/backend/internal/services"
)

const (
	unreadableResumeMessage = "Could not extract text from the resume PDF. The file might be empty, encrypted, image-based, or corrupted. Please ensure your PDF contains selectable text."
	similarityFailedMessage = "Failed to compute semantic similarity. Please try again later."
	internalErrorMessage    = "An error occurred during analysis. Please try again later."
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	uploads  services.UploadService
	levels   []models.ExperienceLevel
	timeout  time.Duration
	debug    bool
}

// NewAnalyzeHandler builds the /analyze handler. Experience level hints
// outside levels fall back to auto. A positive timeout bounds each analysis,
// including its outbound embedding calls.
func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploads services.UploadService,
	levels []models.ExperienceLevel,
	timeout time.Duration,
	debug bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		uploads:  uploads,
		levels:   levels,
		timeout:  timeout,
		debug:    debug,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resume, _ := c.FormFile("resume")

	data, err := h.uploads.ReadResume(resume)
	if err != nil {
		return h.respondError(c, err)
	}

	req := models.AnalysisRequest{
		ResumePDF:       data,
		JobDescription:  c.FormValue("jobDescription"),
		ExperienceLevel: models.ParseExperienceLevelIn(c.FormValue("experienceLevel", string(models.LevelAuto)), h.levels),
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(result)
}

func (h *AnalyzeHandler) respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr *services.ValidationError
		extractionErr *services.ExtractionError
		embeddingErr  *services.EmbeddingError
	)

	switch {
	case errors.As(err, &validationErr):
		return h.errorJSON(c, fiber.StatusBadRequest, validationErr.Message, nil)
	case errors.Is(err, services.ErrFileTooLarge):
		return h.errorJSON(c, fiber.StatusRequestEntityTooLarge, FileTooLargeMessage(h.uploads.MaxFileSize()), nil)
	case errors.As(err, &extractionErr):
		log.Printf("⚠️  Resume rejected (%s): %v\n", extractionErr.Reason, err)
		return h.errorJSON(c, fiber.StatusBadRequest, unreadableResumeMessage, err)
	case errors.As(err, &embeddingErr):
		log.Printf("❌ Embedding error: %v\n", err)
		return h.errorJSON(c, fiber.StatusInternalServerError, similarityFailedMessage, err)
	default:
		log.Printf("❌ Unexpected analysis error: %v\n", err)
		return h.errorJSON(c, fiber.StatusInternalServerError, internalErrorMessage, err)
	}
}

func (h *AnalyzeHandler) errorJSON(c *fiber.Ctx, status int, message string, cause error) error {
	resp := models.ErrorResponse{Error: message}
	if h.debug && cause != nil {
		details := cause.Error()
		resp.Details = &details
	}
	return c.Status(status).JSON(resp)
}

func FileTooLargeMessage(maxFileSize int64) string {
	return fmt.Sprintf("File size exceeds %dMB limit", maxFileSize/(1<<20))
}
