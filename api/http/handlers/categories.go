package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/category"
)

// Categories returns the id -> label table.
// @Summary Справочник категорий
// @Tags    Категории
// @Produce json
// @Success 200 {array} category.Entry
// @Router  /categories [get]
func Categories(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, category.All())
}
