package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

type ClassificationsHandler struct {
	svc resume.ClassificationService
}

func NewClassificationsHandler(svc resume.ClassificationService) *ClassificationsHandler {
	return &ClassificationsHandler{svc: svc}
}

// List возвращает историю классификаций пользователя (или все, если админ).
// @Summary История классификаций
// @Tags    Классификации
// @Produce json
// @Param   limit  query int false "Размер страницы (1..200, по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} resume.Classification
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /classifications [get]
func (h *ClassificationsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.svc.List(c.UserContext(), currentUserID(c), currentIsAdmin(c), limit, offset)
	if err != nil {
		return h.fail(c, err, "failed to list classifications")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает одну классификацию.
// @Summary Получить классификацию
// @Tags    Классификации
// @Produce json
// @Param   id path string true "ID классификации (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Classification
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /classifications/{id} [get]
func (h *ClassificationsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	item, err := h.svc.Get(c.UserContext(), currentUserID(c), currentIsAdmin(c), id)
	if err != nil {
		return h.fail(c, err, "failed to get classification")
	}
	return presenter.JSON(c, http.StatusOK, item)
}

// Delete удаляет классификацию.
// @Summary Удалить классификацию
// @Tags    Классификации
// @Param   id path string true "ID классификации (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /classifications/{id} [delete]
func (h *ClassificationsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.UserContext(), currentUserID(c), currentIsAdmin(c), id); err != nil {
		return h.fail(c, err, "failed to delete classification")
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ClassificationsHandler) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, resume.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "classification not found")
	case errors.Is(err, resume.ErrHistoryDisabled):
		return presenter.Error(c, http.StatusNotImplemented, err.Error())
	default:
		log.WithError(err).Error(msg)
		return presenter.Error(c, http.StatusInternalServerError, msg)
	}
}
