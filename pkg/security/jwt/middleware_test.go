package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/auth"
)

func newApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/", mw, func(c *fiber.Ctx) error {
		uid, _ := c.Locals(LocalUserID).(string)
		admin, _ := c.Locals(LocalIsAdmin).(bool)
		return c.JSON(fiber.Map{"uid": uid, "admin": admin})
	})
	return app
}

func do(t *testing.T, app *fiber.App, header string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	gen := NewGenerator("secret", "resume-analyzer", time.Hour)
	user := auth.User{ID: uuid.New(), IsAdmin: true}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newApp(NewAuthMiddleware("secret", "resume-analyzer"))

	assert.Equal(t, http.StatusOK, do(t, app, "Bearer "+token).StatusCode)
	assert.Equal(t, http.StatusOK, do(t, app, token).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer ").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer garbage").StatusCode)

	other, err := NewGenerator("other-secret", "resume-analyzer", time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer "+other).StatusCode)

	wrongIssuer, err := NewGenerator("secret", "someone-else", time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer "+wrongIssuer).StatusCode)

	expired, err := NewGenerator("secret", "resume-analyzer", -time.Minute).Generate(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer "+expired).StatusCode)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	gen := NewGenerator("secret", "", time.Hour)
	user := auth.User{ID: uuid.New()}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newApp(NewOptionalAuthMiddleware("secret", ""))

	assert.Equal(t, http.StatusOK, do(t, app, "").StatusCode)
	assert.Equal(t, http.StatusOK, do(t, app, "Bearer "+token).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer garbage").StatusCode)
}
