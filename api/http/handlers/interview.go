package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avikamggh/ai-interviewer/api/http/presenter"
	"github.com/avikamggh/ai-interviewer/pkg/questions"
	"github.com/avikamggh/ai-interviewer/pkg/resume"
	"github.com/avikamggh/ai-interviewer/pkg/security/token"
)

// InterviewHandler accepts resume uploads and prepares interviews: it
// extracts text, analyzes it, selects the per-language question sets and
// hands back a token the websocket uses to start the session.
type InterviewHandler struct {
	store      *resume.Store
	tokens     *token.Manager
	selectOpts questions.Options
	log        *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewInterviewHandler(store *resume.Store, tokens *token.Manager, opts questions.Options, maxUploadMB int, log *zap.Logger) *InterviewHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 15
	}
	return &InterviewHandler{
		store:      store,
		tokens:     tokens,
		selectOpts: opts,
		log:        log,
		maxBytes:   int64(maxUploadMB) << 20,
	}
}

type uploadResponse struct {
	Analysis  resume.Analysis                 `json:"analysis"`
	Questions map[questions.Language][]string `json:"questions"`
	Token     string                          `json:"token"`
}

// Upload analyzes an uploaded resume and prepares the interview.
// @Summary Upload a resume and receive the interview plan
// @Description Accepts a PDF or DOCX resume, extracts its text, derives the skill profile and returns the per-language question sets plus the interview token.
// @Tags    interview
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} handlers.uploadResponse
// @Failure 400 {object} presenter.ErrorResponse "Unreadable or unsupported document"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /interview/upload [post]
func (h *InterviewHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.BadRequest(c, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.BadRequest(c, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.BadRequest(c, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.BadRequest(c, err.Error())
	}

	text, err := resume.ParseText(fh.Filename, data)
	if err != nil {
		return presenter.BadRequest(c, fmt.Sprintf("failed to read resume: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return presenter.BadRequest(c, "empty resume content")
	}

	analysis := resume.Analyze(text)
	sets := questions.SelectAll(analysis, h.selectOpts)

	stored := make(map[string][]string, len(sets))
	for lang, qs := range sets {
		stored[string(lang)] = qs
	}
	id := h.store.Put(analysis, stored)

	tok, err := h.tokens.Issue(id)
	if err != nil {
		h.log.Error("issue interview token", zap.Error(err))
		return presenter.ServerError(c, "failed to prepare interview")
	}

	h.log.Info("resume analyzed",
		zap.String("analysisId", id.String()),
		zap.String("filename", fh.Filename),
		zap.Int("sizeB", len(data)),
		zap.Int("years", analysis.Experience.Years),
		zap.String("level", string(analysis.Experience.Level)),
	)

	return presenter.JSON(c, http.StatusOK, uploadResponse{
		Analysis:  analysis,
		Questions: sets,
		Token:     tok,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
