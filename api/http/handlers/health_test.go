package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/health"
)

type countingChecker struct {
	name  string
	err   error
	calls int
}

func (c *countingChecker) Name() string { return c.name }

func (c *countingChecker) Check(context.Context) error {
	c.calls++
	return c.err
}

func readyApp(checkers ...health.Checker) *fiber.App {
	app := fiber.New()
	h := NewHealthHandler(health.NewService(checkers...))
	app.Get("/ready", h.Ready)
	return app
}

func TestReady_RunsEachCheckOnce(t *testing.T) {
	model := &countingChecker{name: "model"}
	db := &countingChecker{name: "sqlite"}

	resp, err := readyApp(db, model).Test(httptest.NewRequest("GET", "/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, model.calls)
	assert.Equal(t, 1, db.calls)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ready", body.Status)
	assert.Equal(t, map[string]string{"model": "ok", "sqlite": "ok"}, body.Checks)
}

func TestReady_NotReady(t *testing.T) {
	model := &countingChecker{name: "model", err: errors.New("not loaded")}

	resp, err := readyApp(model).Test(httptest.NewRequest("GET", "/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 1, model.calls)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "model: not loaded", body["details"])
}
