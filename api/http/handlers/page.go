package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

//go:embed templates/page.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "templates/page.html"))

type pageData struct {
	Category string
	Error    string
}

// PageHandler serves the browser upload form on "/".
type PageHandler struct {
	svc      resume.ClassificationService
	maxBytes int64
}

func NewPageHandler(svc resume.ClassificationService, maxBytes int64) *PageHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &PageHandler{svc: svc, maxBytes: maxBytes}
}

// Show renders the empty form with the upload prompt.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	return render(c, http.StatusOK, pageData{})
}

// Submit classifies the posted file and renders the predicted category.
// Без файла страница показывает ту же подсказку, что и GET.
func (h *PageHandler) Submit(c *fiber.Ctx) error {
	if fh, err := c.FormFile("file"); err != nil || fh == nil || fh.Filename == "" {
		return render(c, http.StatusOK, pageData{})
	}
	upload, status, msg := readUpload(c, h.maxBytes)
	if status != 0 {
		return render(c, status, pageData{Error: msg})
	}
	upload.OwnerID = currentUserID(c)

	res, err := h.svc.Classify(c.UserContext(), upload)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) || errors.Is(err, resume.ErrUnreadableDocument) {
			return render(c, http.StatusBadRequest, pageData{Error: err.Error()})
		}
		log.WithError(err).WithField("filename", upload.Filename).Error("classify resume")
		return render(c, http.StatusInternalServerError, pageData{Error: "failed to classify resume"})
	}
	return render(c, http.StatusOK, pageData{Category: res.Category})
}

func render(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
