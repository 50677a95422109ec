package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
)

const defaultMaxUploadBytes = 15 << 20 // 15MB

type ClassifyHandler struct {
	svc resume.ClassificationService
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewClassifyHandler(svc resume.ClassificationService, maxBytes int64) *ClassifyHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &ClassifyHandler{svc: svc, maxBytes: maxBytes}
}

// Classify определяет категорию загруженного резюме (PDF/TXT).
// @Summary Классификация резюме
// @Description Принимает PDF или TXT, извлекает и очищает текст, возвращает предсказанную категорию. С токеном результат сохраняется в историю пользователя.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или TXT)"
// @Security BearerAuth
// @Success 200 {object} resume.Result
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или чтения файла"
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /resume/classify [post]
func (h *ClassifyHandler) Classify(c *fiber.Ctx) error {
	upload, status, msg := readUpload(c, h.maxBytes)
	if status != 0 {
		return presenter.Error(c, status, msg)
	}
	upload.OwnerID = currentUserID(c)

	res, err := h.svc.Classify(c.UserContext(), upload)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) || errors.Is(err, resume.ErrUnreadableDocument) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		log.WithError(err).WithField("filename", upload.Filename).Error("classify resume")
		return presenter.Error(c, http.StatusInternalServerError, "failed to classify resume")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// readUpload reads the multipart "file" field. A non-zero status means the
// request must be rejected with msg.
func readUpload(c *fiber.Ctx, maxBytes int64) (resume.Upload, int, string) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return resume.Upload{}, http.StatusBadRequest, "file is required (pdf or txt)"
	}
	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if _, err := resume.DetectFormat(fh.Filename, mimeType); err != nil {
		return resume.Upload{}, http.StatusBadRequest, err.Error()
	}
	file, err := fh.Open()
	if err != nil {
		return resume.Upload{}, http.StatusBadRequest, "failed to open uploaded file"
	}
	defer file.Close()

	data, err := readAtMost(file, maxBytes)
	if err != nil {
		return resume.Upload{}, http.StatusRequestEntityTooLarge, err.Error()
	}
	return resume.Upload{Filename: fh.Filename, MimeType: mimeType, Data: data}, 0, ""
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

// currentUserID returns uuid.Nil for anonymous requests.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	s, _ := c.Locals(jwt.LocalUserID).(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func currentIsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(jwt.LocalIsAdmin).(bool)
	return v
}
